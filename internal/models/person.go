package models

import "fmt"

// Person is a single record in the list. ID is assigned once and never reused.
type Person struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
}

func (p Person) Describe() string {
	return fmt.Sprintf("I'm %s and I am %d years old!", p.Name, p.Age)
}
