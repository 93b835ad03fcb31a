package main

import (
	"userapi/cmd/userapi/commands"
	"userapi/lib/serviceutil"
)

func main() {
	ctx, cancel := serviceutil.SignalContext()
	defer cancel()
	commands.ExecuteContext(ctx)
}
