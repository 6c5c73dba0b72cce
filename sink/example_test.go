package sink_test

import (
	"fmt"
	"os"

	"github.com/jonwraymond/callops/sink"
)

func ExampleWriter() {
	s := sink.Writer(os.Stdout)

	s.WriteLine("f <== called by g")
	s.WriteLine("f ==> returning to g")
	// Output:
	// f <== called by g
	// f ==> returning to g
}

func ExampleFunc() {
	var captured []string
	s := sink.Func(func(text string) {
		captured = append(captured, text)
	})

	s.WriteLine("one")
	s.WriteLine("two")
	fmt.Println(len(captured), captured[0])
	// Output:
	// 2 one
}
