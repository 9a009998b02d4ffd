package main

import "github.com/Manjunath203/ai-url-to-video-generator/internal/cli"

func main() {
	cli.Main()
}
