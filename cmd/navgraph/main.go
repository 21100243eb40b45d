// Command navgraph inspects building data: it validates the navigation
// graph, answers route queries and renders QR anchor markers.
package main

func main() {
	Execute()
}
