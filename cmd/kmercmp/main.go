// cmd/kmercmp/main.go
package main

import (
	"kmercmp/internal/app"
	"kmercmp/internal/appshell"
)

func main() { appshell.Main(app.Run) }
