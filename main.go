package main

import (
	"db-shuttle/cmd"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func main() {
	cmd.Execute()
}
