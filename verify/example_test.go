package verify_test

import (
	"fmt"

	"github.com/katalvlaran/qmap/builder"
	"github.com/katalvlaran/qmap/core"
	"github.com/katalvlaran/qmap/routing"
	"github.com/katalvlaran/qmap/verify"
)

// ExampleCheckEquivalence routes a Bell-pair circuit between two star
// leaves and confirms the routed version is equivalent.
func ExampleCheckEquivalence() {
	star, err := builder.StarTopology(3, 0)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	c := core.MustCircuit(3)
	c.MustAdd("H", 1).MustAdd("CNOT", 1, 2)

	initial := core.IdentityLayout(3)
	res, err := routing.Route(c, star, initial)
	if err != nil {
		fmt.Println("route:", err)
		return
	}
	f, err := verify.CheckEquivalence(c, res, initial, 1e-9)
	if err != nil {
		fmt.Println("verify:", err)
		return
	}
	fmt.Printf("swaps=%d fidelity=%.3f\n", res.Swaps, f)
	// Output: swaps=1 fidelity=1.000
}
