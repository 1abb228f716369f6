package symtab

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/semtree"
)

// Populate строит таблицу символов для всей программы (§1, §4.7): каждое
// имя класса становится символом типа в глобальной области, затем для
// каждого класса открывается область для его атрибутов и вложенная область
// для формальных параметров каждого метода. Вызывается после inherit.Validate,
// так что Parent уже разрешён и SELF_TYPE внутри класса корректно
// разворачивается через EnterClass/ResolveType.
func Populate(prog *semtree.ProgramNode) (*Table, []error) {
	t := New()
	var errs []error

	for name, cls := range prog.Classes {
		if err := t.Define(&Symbol{Name: name, Type: name, Pos: cls.Pos}); err != nil {
			errs = append(errs, err)
		}
	}

	for _, cls := range prog.Classes {
		t.EnterClass(cls.Name)
		t.PushScope()

		for _, attr := range cls.Attrs {
			typ, ok := t.ResolveType(attr.Type)
			if !ok {
				errs = append(errs, fmt.Errorf("attribute %s.%s: SELF_TYPE resolved outside class body", cls.Name, attr.Name))
				typ = attr.Type
			}
			if err := t.Define(&Symbol{Name: attr.Name, Type: typ, Pos: attr.Pos}); err != nil {
				errs = append(errs, err)
			}
		}

		for _, m := range cls.Methods {
			t.PushScope()
			for _, f := range m.Formals {
				typ, ok := t.ResolveType(f.Type)
				if !ok {
					errs = append(errs, fmt.Errorf("formal %s.%s(%s): SELF_TYPE resolved outside class body", cls.Name, m.Name, f.Name))
					typ = f.Type
				}
				if err := t.Define(&Symbol{Name: f.Name, Type: typ, Pos: f.Pos}); err != nil {
					errs = append(errs, err)
				}
			}
			t.PopScope()
		}

		t.PopScope()
		t.ExitClass()
	}

	return t, errs
}
