package schema

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/brokerdesk/crm/internal/domain/shared"
)

var descriptorIndex = func() map[string]Descriptor {
	index := make(map[string]Descriptor)
	for _, d := range Descriptors() {
		index[d.Name()] = d
	}
	return index
}()

// Lookup returns the descriptor of the named table or view
func Lookup(name string) (Descriptor, error) {
	d, ok := descriptorIndex[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownRelation, name)
	}
	return d, nil
}

// Tables returns a pointer to a new zero Row value of the named table or
// view, e.g. *models.Client for "clients".
func Tables(name string) (any, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return reflect.New(d.rowType()).Interface(), nil
}

// TablesInsert returns a pointer to a new zero Insert value of the named
// table. Views have no Insert shape and are rejected.
func TablesInsert(name string) (InsertShape, error) {
	d, err := tableDescriptor(name)
	if err != nil {
		return nil, err
	}
	return reflect.New(d.insertType()).Interface().(InsertShape), nil
}

// TablesUpdate returns a pointer to a new zero Update value of the named
// table. Views have no Update shape and are rejected.
func TablesUpdate(name string) (UpdateShape, error) {
	d, err := tableDescriptor(name)
	if err != nil {
		return nil, err
	}
	return reflect.New(d.updateType()).Interface().(UpdateShape), nil
}

// Enums returns the labels of the named enum in database order
func Enums(name string) ([]string, error) {
	values, ok := enumStrings()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownEnum, name)
	}
	return slices.Clone(values), nil
}

// TableNames returns the names of all tables
func TableNames() []string {
	return names(KindTable)
}

// ViewNames returns the names of all views
func ViewNames() []string {
	return names(KindView)
}

// EnumNames returns the names of all enums sorted
func EnumNames() []string {
	out := make([]string, 0, len(declaredEnums))
	for name := range enumStrings() {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func names(kind RelationKind) []string {
	var out []string
	for _, d := range Descriptors() {
		if d.Kind() == kind {
			out = append(out, d.Name())
		}
	}
	return out
}

func tableDescriptor(name string) (Descriptor, error) {
	d, ok := descriptorIndex[name]
	if !ok || d.Kind() != KindTable {
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownTable, name)
	}
	return d, nil
}
