// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "shargs-cli/cmd/shargs"
)

func main() {
	cmd.Execute()
}
