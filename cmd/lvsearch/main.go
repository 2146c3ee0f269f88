// Command lvsearch solves search scenarios from YAML files.
package main

func main() {
	Execute()
}
