// Command insightsctl runs household insight and report operations from the shell.
package main

func main() {
	Execute()
}
