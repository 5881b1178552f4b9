package cli

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"inspector-kit/examples/scene"
	"inspector-kit/internal/common"
	"inspector-kit/internal/match"
	"inspector-kit/meta"
)

// Views accepted by describe --view.
const (
	ViewOrdered      = "ordered"
	ViewGrouped      = "grouped"
	ViewAlphabetical = "alphabetical"
)

var (
	// ErrUnknownType is returned for type names outside the sample registry.
	ErrUnknownType = errors.New("unknown type")
	// ErrUnknownView is returned for an unsupported --view value.
	ErrUnknownView = errors.New("unknown view")
)

// memberDump is the plain-data form of a member printed by --dump.
type memberDump struct {
	AccessName  string
	DisplayName string
	Kind        string
	Source      string
	Category    string
	Priority    *int
	Tip         string
	Flags       []string
	EnumNames   []string
	ReadOnly    bool
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (a *app) newDescribeCommand() *cobra.Command {
	var (
		view string
		dump bool
	)

	cmd := &cobra.Command{
		Use:       "describe <Type>",
		Short:     "List the inspector members of a sample type",
		Args:      cobra.ExactArgs(1),
		ValidArgs: scene.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookupType(args[0])
			if err != nil {
				return err
			}

			cache := a.cache()
			out := cmd.OutOrStdout()

			var members []*meta.Member

			switch view {
			case ViewOrdered:
				members = cache.Ordered(t)
				printMembers(out, members, "")
			case ViewAlphabetical:
				members = cache.Alphabetical(t)
				printMembers(out, members, "")
			case ViewGrouped:
				for _, g := range cache.Grouped(t) {
					color.New(color.FgCyan, color.Bold).Fprintln(out, g.Name)
					printMembers(out, g.Members, "  ")
					members = append(members, g.Members...)
				}
			default:
				return fmt.Errorf("%w: %q (want %s, %s or %s)",
					ErrUnknownView, view, ViewOrdered, ViewGrouped, ViewAlphabetical)
			}

			if dump {
				dumper.Fdump(out, dumpMembers(members))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", ViewOrdered, "member order: ordered, grouped or alphabetical")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the member descriptors")

	return cmd
}

func lookupType(name string) (reflect.Type, error) {
	t, ok := scene.Lookup(name)
	if !ok {
		if hint, ok := common.First(match.Suggest(name, scene.Names(), 1)); ok {
			return nil, fmt.Errorf("%w: %s (did you mean %s?)", ErrUnknownType, name, hint)
		}

		return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownType, name, strings.Join(scene.Names(), ", "))
	}

	return t, nil
}

func printMembers(w io.Writer, members []*meta.Member, indent string) {
	nameColor := color.New(color.FgGreen)

	for _, m := range members {
		priority := "-"
		if m.HasPriority {
			priority = strconv.Itoa(m.Priority)
		}

		fmt.Fprint(w, indent)
		nameColor.Fprintf(w, "%-16s", m.DisplayName)
		fmt.Fprintf(w, " %-10s %-12s %-3s %s\n", m.Kind, m.Category, priority, m.Tip)
	}
}

func dumpMembers(members []*meta.Member) []memberDump {
	dumps := make([]memberDump, 0, len(members))

	for _, m := range members {
		d := memberDump{
			AccessName:  m.AccessName,
			DisplayName: m.DisplayName,
			Kind:        m.Kind.String(),
			Source:      m.Source.String(),
			Category:    m.Category,
			Tip:         m.Tip,
			Flags:       m.Flags,
			EnumNames:   m.EnumNames,
			ReadOnly:    !m.CanSet(),
		}

		if m.HasPriority {
			priority := m.Priority
			d.Priority = &priority
		}

		dumps = append(dumps, d)
	}

	return dumps
}
