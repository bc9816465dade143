/*
Copyright 2026 Magnet Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command magnet parses a magnet link and prints its components to
// standard output.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/JonKalb/boost.url/magnet"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <link>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "%s\n", "example: magnet \"magnet:?xt=urn:btih:d2474e86c95b19b8bcfdb92bc12c9d44667cfa36"+
		"&dn=Leaves+of+Grass+by+Walt+Whitman.epub"+
		"&tr=udp%3A%2F%2Ftracker.example4.com%3A80"+
		"&tr=udp%3A%2F%2Ftracker.example5.com%3A80"+
		"&tr=udp%3A%2F%2Ftracker.example3.com%3A6969"+
		"&tr=udp%3A%2F%2Ftracker.example2.com%3A80"+
		"&tr=udp%3A%2F%2Ftracker.example1.com%3A1337\"")
}

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}

	link, err := magnet.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("link:", link)

	for topic := range link.ExactTopics().All() {
		fmt.Println("topic:", topic)
	}
	for hash := range link.InfoHashes().All() {
		fmt.Println("hash:", hash)
	}
	for protocol := range link.Protocols().All() {
		fmt.Println("protocol:", protocol)
	}

	var buffer bytes.Buffer
	for tracker := range link.AddressTrackers(&buffer).All() {
		fmt.Println("tracker:", tracker)
	}
	for source := range link.ExactSources(&buffer).All() {
		fmt.Println("exact source:", source)
	}
	for source := range link.AcceptableSources(&buffer).All() {
		fmt.Println("acceptable source:", source)
	}
	for topic := range link.ManifestTopics(&buffer).All() {
		fmt.Println("manifest topic:", topic)
	}
	for seed := range link.WebSeed(&buffer).All() {
		fmt.Println("web seed:", seed)
	}

	if kt, ok := link.KeywordTopic(); ok {
		fmt.Println("keyword topic:", kt)
	}
	if dn, ok := link.DisplayName(); ok {
		fmt.Println("display name:", dn)
	}
}
