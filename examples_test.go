package treap

import (
	"errors"
	"fmt"
)

func ExampleTreap_Set() {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	old, replaced := m.Set(1, "uno")
	fmt.Println(m.Len(), old, replaced)
	// Output: 2 one true
}

func ExampleTreap_Get() {
	m := New[int, string]()
	m.Set(1, "one")
	val, err := m.Get(1)
	fmt.Println(val, err)
	_, err = m.Get(99)
	fmt.Println(errors.Is(err, ErrKeyNotFound))
	// Output: one <nil>
	// true
}

func ExampleTreap_Delete() {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(2, "two")
	val, err := m.Delete(1)
	fmt.Println(val, err)
	fmt.Println(m.Len())
	// Output: one <nil>
	// 1
}

func ExampleTreap_Ascend() {
	m := New[int, string]()
	m.Set(3, "three")
	m.Set(1, "one")
	m.Set(2, "two")
	it := m.Ascend()
	for it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
	}
	fmt.Println()
	// Output: 1:one 2:two 3:three
}

func ExampleTreap_Descend() {
	m := New[int, string]()
	for _, k := range []int{10, 5, 15, 3, 7} {
		m.Set(k, "")
	}
	it := m.Descend()
	for it.Next() {
		fmt.Print(it.Key(), " ")
	}
	fmt.Println()
	// Output: 15 10 7 5 3
}

func ExampleTreap_Scan() {
	m := New[string, int]()
	for i, k := range []string{"apple", "banana", "cherry", "date"} {
		m.Set(k, i)
	}
	for k, v := range m.Scan("b", "d") {
		fmt.Println(k, v)
	}
	// Output: banana 1
	// cherry 2
}

func ExampleIterator_SeekGE() {
	m := New[int, string]()
	m.Set(1, "one")
	m.Set(3, "three")
	m.Set(5, "five")
	it := m.Ascend()
	for ok := it.SeekGE(2); ok; ok = it.Next() {
		fmt.Printf("%d:%s ", it.Key(), it.Value())
	}
	fmt.Println()
	// Output: 3:three 5:five
}
