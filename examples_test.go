package structdiff

import (
	"encoding/json"
	"fmt"
)

// Diff two values of the same struct type, serialize the delta, and
// patch the first value back into the second
func Example() {
	type Point struct {
		X string
		Y int
	}

	differ := Struct(
		FieldOf("x", func(p *Point) *string { return &p.X }, Scalar[string]()),
		FieldOf("y", func(p *Point) *int { return &p.Y }, Scalar[int]()),
	)

	a := Point{X: "a", Y: 1}
	b := Point{X: "a", Y: 2}

	delta := differ.Diff(a, b)
	data, _ := json.Marshal(delta)
	fmt.Println(string(data))

	patched, _ := differ.Apply(a, delta)
	fmt.Printf("%+v\n", patched)
	// Output: [".",[["y",["~",2]]]]
	// {X:a Y:2}
}

func ExampleFormatPretty() {
	delta := simpleEnumDiffer.Diff(Second{N: 5}, Second{N: 7})

	text, _ := FormatPrettyString(delta, false)
	fmt.Print(text)
	fmt.Print(FormatPrettyStats(CalcStats(delta)))
	// Output: Second:
	//   ~ 0: 7
	// 1 replace. 1 field change.
}
