/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"fmt"
	"os"

	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/pkg/cmd/root"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run keeps the deferred Close ahead of the exit so the watcher and any
// database pool shut down cleanly.
func run() error {
	s, err := state.NewState("")
	if err != nil {
		return err
	}
	defer s.Close()

	cmd, err := root.NewCmdRoot(s)
	if err != nil {
		return err
	}

	return cmd.Execute()
}
