package main

import (
	otomai "github.com/Detrauxa/Otoma--Tracker/cmd/otomai"
)

func main() {
	otomai.Execute()
}
