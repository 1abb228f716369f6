// Package symtab реализует стек именованных областей видимости и
// разрешение SELF_TYPE к имени объемлющего класса (§4.7). Populate толкает
// область на каждый класс (его атрибуты) и на каждый метод (его formal-список);
// тела выражений, в том числе let и case, не обходятся и областей не получают.
package symtab

import (
	"fmt"

	"github.com/semetekare/rust2go/internal/token"
)

// Symbol — запись в области видимости: имя переменной/атрибута/формального
// параметра и его объявленный тип.
type Symbol struct {
	Name string
	Type string
	Pos  token.Position
}

// scope — одна область видимости: плоская карта имя -> Symbol.
type scope map[string]*Symbol

// Table — стек областей видимости с отдельно отслеживаемым именем текущего
// класса, необходимым для разрешения SELF_TYPE (§3, §4.7).
type Table struct {
	scopes      []scope
	classStack  []string // имена объемлющих классов, снаружи внутрь
}

// New создаёт пустую таблицу символов с одной (глобальной) областью.
func New() *Table {
	return &Table{scopes: []scope{make(scope)}}
}

// PushScope открывает новую вложенную область видимости.
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, make(scope))
}

// PopScope закрывает самую внутреннюю область видимости. Вызов, когда
// осталась только глобальная область, — ошибка использования API,
// сознательно паникующая: это инвариант
// парного push/pop, который должен соблюдаться вызывающим кодом.
func (t *Table) PopScope() {
	if len(t.scopes) <= 1 {
		panic("symtab: PopScope called without matching PushScope")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// EnterClass отмечает начало анализа тела класса name, делая SELF_TYPE
// внутри текущей области разрешимым в name (§4.7). Должен сопровождаться
// парным ExitClass.
func (t *Table) EnterClass(name string) {
	t.classStack = append(t.classStack, name)
}

// ExitClass завершает анализ текущего класса.
func (t *Table) ExitClass() {
	if len(t.classStack) == 0 {
		panic("symtab: ExitClass called without matching EnterClass")
	}
	t.classStack = t.classStack[:len(t.classStack)-1]
}

// CurrentClass возвращает имя класса, чьё тело сейчас анализируется, и
// ok=false, если анализ идёт вне какого-либо класса.
func (t *Table) CurrentClass() (string, bool) {
	if len(t.classStack) == 0 {
		return "", false
	}
	return t.classStack[len(t.classStack)-1], true
}

// Define добавляет символ в самую внутреннюю область видимости. Затенение
// объявлений из внешних областей разрешено (§4.7) — Define не проверяет
// внешние области, только дублирование в текущей.
func (t *Table) Define(sym *Symbol) error {
	inner := t.scopes[len(t.scopes)-1]
	if _, exists := inner[sym.Name]; exists {
		return fmt.Errorf("%s already declared in this scope at %s", sym.Name, sym.Pos)
	}
	inner[sym.Name] = sym
	return nil
}

// Lookup ищет символ, начиная с самой внутренней области и расширяясь
// наружу, возвращая первое совпадение (стандартное затенение).
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveType разворачивает SELF_TYPE в имя текущего объемлющего класса
// (§4.7); любой другой тип возвращается без изменений. ok=false, если
// встречен SELF_TYPE вне тела какого-либо класса.
func (t *Table) ResolveType(typ string) (string, bool) {
	if typ != "SELF_TYPE" {
		return typ, true
	}
	return t.CurrentClass()
}
