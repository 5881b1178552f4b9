package meta

import (
	"fmt"
	"reflect"
)

type classKind int

const (
	classPriority classKind = iota
	classIgnore
	classRename
	classTag
)

// ClassAnnotation is a type-level annotation naming its target member.
// Build them with PriorityFor, IgnoreMember, RenameMember and Tag.
type ClassAnnotation struct {
	kind   classKind
	Member string
	Level  int
	Name   string
	Tag    string
}

// PriorityFor places member at level unless the member declares its own
// priority.
func PriorityFor(level int, member string) ClassAnnotation {
	return ClassAnnotation{kind: classPriority, Member: member, Level: level}
}

// IgnoreMember hides member from every view.
func IgnoreMember(member string) ClassAnnotation {
	return ClassAnnotation{kind: classIgnore, Member: member}
}

// RenameMember sets the display name of member. It wins over the member's
// own name annotation.
func RenameMember(member, newName string) ClassAnnotation {
	return ClassAnnotation{kind: classRename, Member: member, Name: newName}
}

// Tag attaches member-level annotations in struct tag syntax. Properties are
// methods and cannot carry struct tags, so this is how they are annotated.
// For fields the struct tag wins on conflicting keys.
func Tag(member, tag string) ClassAnnotation {
	return ClassAnnotation{kind: classTag, Member: member, Tag: tag}
}

// String returns a human-readable representation of the annotation.
func (a ClassAnnotation) String() string {
	switch a.kind {
	case classPriority:
		return fmt.Sprintf("priority(%s=%d)", a.Member, a.Level)
	case classIgnore:
		return fmt.Sprintf("ignore(%s)", a.Member)
	case classRename:
		return fmt.Sprintf("rename(%s=%q)", a.Member, a.Name)
	case classTag:
		return fmt.Sprintf("tag(%s=%q)", a.Member, a.Tag)
	default:
		return "annotation(?)"
	}
}

// Annotated is implemented by types declaring class-level annotations.
// The method is called on a zero value (pointer receivers get a new
// instance) once per type.
type Annotated interface {
	InspectorAnnotations() []ClassAnnotation
}

var annotatedType = reflect.TypeFor[Annotated]()

// classAnnotations is the indexed form of a type's ClassAnnotations.
type classAnnotations struct {
	priorities map[string]int
	ignores    map[string]bool
	renames    map[string]string
	tags       map[string]string
}

func indexClassAnnotations(list []ClassAnnotation) classAnnotations {
	idx := classAnnotations{
		priorities: make(map[string]int),
		ignores:    make(map[string]bool),
		renames:    make(map[string]string),
		tags:       make(map[string]string),
	}

	for _, a := range list {
		switch a.kind {
		case classPriority:
			idx.priorities[a.Member] = a.Level
		case classIgnore:
			idx.ignores[a.Member] = true
		case classRename:
			idx.renames[a.Member] = a.Name
		case classTag:
			if prev, ok := idx.tags[a.Member]; ok {
				idx.tags[a.Member] = prev + "," + a.Tag
			} else {
				idx.tags[a.Member] = a.Tag
			}
		}
	}

	return idx
}

// classAnnotationsOf calls InspectorAnnotations on a fresh value of t.
func classAnnotationsOf(t reflect.Type) []ClassAnnotation {
	switch {
	case t.Implements(annotatedType):
		return reflect.Zero(t).Interface().(Annotated).InspectorAnnotations()
	case reflect.PointerTo(t).Implements(annotatedType):
		return reflect.New(t).Interface().(Annotated).InspectorAnnotations()
	default:
		return nil
	}
}
