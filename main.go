package main

import "github.com/saadjs/bodymetrics-cli/cmd/bodymetrics"

func main() {
	bodymetrics.Execute()
}
