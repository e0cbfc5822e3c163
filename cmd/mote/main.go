// Package main provides the Mote CLI.
package main

import (
	"fmt"
	"os"

	"github.com/mote-ml/mote/scalar"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Mote %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Mote - Scalar Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a small expression")
}

// demo builds e = relu(v1 + v2*v3) and prints every node's gradient.
func demo() {
	v1 := scalar.NewLabeled(1, "v1")
	v2 := scalar.NewLabeled(2, "v2")
	v3 := scalar.NewLabeled(3, "v3")

	e := v1.Add(v2.Mul(v3)).ReLU().SetLabel("e")
	scalar.Backward(e)

	fmt.Printf("e = relu(v1 + v2*v3) = %g\n", e.Value())
	for _, n := range scalar.Nodes(e) {
		label := n.Label()
		if label == "" {
			label = n.Op().String()
		}
		fmt.Printf("  %-4s value=%-6g grad=%g\n", label, n.Value(), n.Grad())
	}
}
