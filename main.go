package main

import (
	"github.com/warmail-statistics/backend-next/cmd/app"
)

func main() {
	app.Run()
}
