package config_test

import (
	"fmt"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/document"
)

func ExampleResolve() {
	// Parse an override document in place of a file on disk. A file-backed
	// equivalent would use config.WithSource("/path/to/override.yaml"); the
	// override may extend an ancestor document through the reserved
	// `extends` key.
	doc, err := document.Parse([]byte(`
container:
  memory: 100m
  cpu: null
`), "example.yaml")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	cfg, err := config.Resolve(config.WithDocument(doc))
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	memory, err := cfg.String("container.memory")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	// An explicit null is a value in its own right, here meaning "no limit".
	cpu, _ := cfg.Get("container.cpu")

	fmt.Printf("memory=%s cpu is null=%v\n", memory, cpu.IsNull())
	// Output: memory=100m cpu is null=true
}

func ExampleConfig_GetOr() {
	doc, _ := document.Parse([]byte("lock:\n  timeout: 120\n"), "example.yaml")
	cfg, _ := config.Resolve(config.WithDocument(doc))

	timeout := cfg.IntOr("lock.timeout", 60)
	expire := cfg.IntOr("lock.expire", 300)

	fmt.Printf("timeout=%d expire=%d\n", timeout, expire)
	// Output: timeout=120 expire=300
}
