// Package inherit строит и проверяет граф наследования классов (§4.6,
// §4.7): сеет запечатанные встроенные классы (Object/IO/Int/String/Bool),
// двумя проходами привязывает объявленные классы к их родителям, затем
// обходит граф в глубину из Object; каждый не достигнутый этим обходом
// класс сообщается как часть цикла (отдельного сообщения о сиротах нет).
package inherit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/semetekare/rust2go/internal/semtree"
)

const (
	Object = "Object"
	IO     = "IO"
	Int    = "Int"
	String = "String"
	Bool   = "Bool"
)

// sealed перечисляет классы, от которых запрещено наследоваться (§4.6):
// Int, String и Bool — листья изменить нельзя, в отличие от Object/IO.
var sealed = map[string]bool{
	Int:    true,
	String: true,
	Bool:   true,
}

var builtinNames = map[string]bool{
	Object: true,
	IO:     true,
	Int:    true,
	String: true,
	Bool:   true,
}

// seedBuiltins заполняет Program встроенными классами, если их там ещё нет.
// Object не имеет родителя; IO/Int/String/Bool наследуют от Object (§4.6).
func seedBuiltins(prog *semtree.ProgramNode) {
	add := func(name, parent string) {
		if _, exists := prog.Classes[name]; !exists {
			prog.Classes[name] = &semtree.ClassNode{Name: name, Parent: parent}
		}
	}
	add(Object, "")
	add(IO, Object)
	add(Int, Object)
	add(String, Object)
	add(Bool, Object)
}

// Validate строит и проверяет граф наследования программы: сеет встроенные
// классы, отклоняет переобъявления встроенных имён и наследование от
// запечатанных классов и от самого себя, разрешает родительские ссылки,
// строит обратные Children-списки, обходит граф через DFS от Object и для
// каждого не охваченного обходом класса сообщает найденный цикл.
//
// Возвращает список всех накопленных ошибок; ProgramNode изменяется на
// месте (Children заполняются, встроенные классы добавляются).
func Validate(prog *semtree.ProgramNode) []error {
	declared := make(map[string]bool, len(prog.Classes))
	for name := range prog.Classes {
		if builtinNames[name] {
			declared[name] = true
		}
	}
	seedBuiltins(prog)
	var errs []error

	survivors := make(map[string]*semtree.ClassNode, len(prog.Classes))
	for name, cls := range prog.Classes {
		if declared[name] {
			errs = append(errs, fmt.Errorf("class %s redefines a built-in class", name))
			continue
		}
		if cls.Parent != "" && sealed[cls.Parent] {
			errs = append(errs, fmt.Errorf("class %s: attempt to inherit from sealed class via %s", name, cls.Parent))
			continue
		}
		if cls.Parent == name {
			errs = append(errs, fmt.Errorf("class %s cannot inherit from itself", name))
			continue
		}
		survivors[name] = cls
	}

	resolved := make(map[string]*semtree.ClassNode, len(survivors))
	for name, cls := range survivors {
		parent := cls.Parent
		if parent == "" && name != Object {
			parent = Object
			cls.Parent = Object
		}
		if parent != "" {
			parentCls, ok := survivors[parent]
			if !ok {
				errs = append(errs, fmt.Errorf("class %s inherits from undeclared class %s", name, parent))
				continue
			}
			parentCls.Children = append(parentCls.Children, name)
		}
		resolved[name] = cls
	}
	// A class whose parent was itself excluded above has no resolved parent
	// either; drop such classes until every remaining one has its parent.
	for changed := true; changed; {
		changed = false
		for name, cls := range resolved {
			if _, ok := resolved[cls.Parent]; cls.Parent != "" && !ok {
				errs = append(errs, fmt.Errorf("class %s inherits from undeclared class %s", name, cls.Parent))
				delete(resolved, name)
				changed = true
			}
		}
	}
	for _, cls := range resolved {
		sort.Strings(cls.Children)
	}

	prog.Classes = resolved

	visited := make(map[string]bool, len(resolved))
	if root, ok := resolved[Object]; ok {
		dfs(resolved, root, visited)
	}

	// Every survivor has a resolved, existing parent (or is Object itself),
	// so the Children graph built above is the reverse of a total parent
	// function: any class the Object-rooted walk never reaches cannot be a
	// true orphan — its parent chain must loop back on itself somewhere.
	// Walking that chain from each unreached class recovers the exact cycle.
	var unreached []string
	for name := range resolved {
		if !visited[name] {
			unreached = append(unreached, name)
		}
	}
	sort.Strings(unreached)

	reported := make(map[string]bool)
	for _, name := range unreached {
		if reported[name] {
			continue
		}
		cyclePath := walkToCycle(resolved, name)
		for _, n := range cyclePath {
			reported[n] = true
		}
		errs = append(errs, fmt.Errorf("cycle in the inheritance graph via %s", strings.Join(cyclePath, " -> ")))
	}

	return errs
}

// dfs marks every class reachable from root by following Children edges.
func dfs(classes map[string]*semtree.ClassNode, node *semtree.ClassNode, visited map[string]bool) {
	visited[node.Name] = true
	for _, childName := range node.Children {
		if visited[childName] {
			continue
		}
		if child, ok := classes[childName]; ok {
			dfs(classes, child, visited)
		}
	}
}

// walkToCycle follows Parent pointers from start until a class repeats,
// returning the path up to and including the repeated class (§4.7).
func walkToCycle(classes map[string]*semtree.ClassNode, start string) []string {
	seen := make(map[string]int)
	var path []string
	name := start
	for {
		if idx, ok := seen[name]; ok {
			return append(path[idx:], name)
		}
		seen[name] = len(path)
		path = append(path, name)
		cls, ok := classes[name]
		if !ok || cls.Parent == "" {
			return path
		}
		name = cls.Parent
	}
}
