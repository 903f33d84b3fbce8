package main

import "github.com/utilmind/replace-php-includes/cmd"

func main() {
	cmd.Execute()
}
