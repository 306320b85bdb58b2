// examples_test.go — runnable documentation for the plain-message paths.
package humane_test

import (
	"fmt"

	"github.com/humane-io/humane"
)

func ExampleUser() {
	err := humane.User(
		humane.Basic("We could not open the config file you provided."),
		"Make sure that the file exists and is readable by the application.",
	)

	fmt.Println(err.Message())
	// Output:
	// Oh no! We could not open the config file you provided.
	//
	// To try and fix this, you can:
	//  - Make sure that the file exists and is readable by the application.
}

func ExampleSystem() {
	err := humane.System(
		humane.Basic("Failed to generate the config file."),
		"Please file a bug report including the steps you took.",
	)

	fmt.Println(err.Message())
	// Output:
	// Whoops! Failed to generate the config file. (This isn't your fault)
	//
	// To try and fix this, you can:
	//  - Please file a bug report including the steps you took.
}

func ExampleWrapUser() {
	inner := humane.User(
		humane.Basic("We could not find a file at /home/user/.config/demo.yml"),
		"Make sure that the file exists and is readable by the application.",
	)
	err := humane.WrapUser(
		inner,
		"We could not open the config file you provided.",
		"Make sure that you've specified a valid config file with the --config option.",
	)

	fmt.Println(err.Message())
	// Output:
	// Oh no! We could not open the config file you provided.
	//
	// This was caused by:
	//  - We could not find a file at /home/user/.config/demo.yml
	//
	// To try and fix this, you can:
	//  - Make sure that the file exists and is readable by the application.
	//  - Make sure that you've specified a valid config file with the --config option.
}

func ExampleError_Advice() {
	deep := humane.User(humane.Basic("Low-level failure."), "Check low-level systems")
	high := humane.WrapUser(deep, "High-level issue.", "Check high-level configuration")

	for _, tip := range high.Advice() {
		fmt.Println(tip)
	}
	// Output:
	// Check low-level systems
	// Check high-level configuration
}
