// Command wispbench times a tight loop through the interpreter, the same
// microbenchmark shape as the teacher's cmd/lex.go, ported to the Result-
// returning internal.Run surface.
package main

import (
	"fmt"
	"time"

	"github.com/mliezun/wisp/internal"
)

var source = `
let a = 0;
while (a < 100000000) {
	a = a + 1;
}
`

func main() {
	start := time.Now()
	result := internal.Run(source)
	fmt.Println("Time elapsed is:", time.Since(start))
	if !result.Succeeded {
		for _, d := range result.Errors {
			fmt.Println(d.Error())
		}
	}
}
