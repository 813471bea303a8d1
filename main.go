package main

import "github.com/DigitalDetectiv/sfd-bmd-central-girder/cmd"

func main() {
	cmd.Execute()
}
