// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jtok parses annotated JSON token streams into labeled parse trees,
// reporting the first semantic error found in each input.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jtok: %v\n", err)
		os.Exit(1)
	}
}
