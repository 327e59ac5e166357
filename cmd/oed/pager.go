// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// defaultWidth is used when the terminal size is unknown.
const defaultWidth = 80

var termGetSize = term.GetSize

// terminalWidth returns the width of the terminal attached to stdout.
func terminalWidth() int {
	width, _, err := termGetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// pageLess displays text with less. Escape sequences are passed through. If
// less is not installed the text is printed.
func pageLess(text string) error {
	cmd := exec.Command("less", "-r")
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if errors.Is(err, exec.ErrNotFound) {
		_, err = fmt.Fprint(os.Stdout, text)
		//nolint:wrapcheck // stdout write errors need no context.
		return err
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}
