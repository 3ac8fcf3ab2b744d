package main

import "github.com/hafidh2001/Hactiv8-Assignment-3/internal/app"

func main() {
	app.Run()
}
