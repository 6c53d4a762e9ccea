package cli

func regCommands() {
	//Root
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(mineCmd)
}
