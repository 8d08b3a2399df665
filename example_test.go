package nanolog_test

import (
	"fmt"
	"os"

	"github.com/max-chem-eng/nanolog"
)

func Example() {
	cfg := nanolog.DefaultConfig()
	cfg.EnableTimestamp = false

	log, err := nanolog.New(cfg, nanolog.WithSink(nanolog.NewWriterSink(os.Stdout)))
	if err != nil {
		fmt.Println(err)
		return
	}

	log.Error("NET", "fail %d", 7)
	log.Info("SYS", "boot complete")

	// Output:
	// ---------- NEW EXECUTION -----------
	//
	// [1] E : [NET] fail 7
	// [2] I : [SYS] boot complete
}

func ExampleMemorySink() {
	mem := nanolog.NewMemorySink(2)

	cfg := nanolog.DefaultConfig()
	cfg.EnableTimestamp = false

	log, _ := nanolog.New(cfg, nanolog.WithSink(mem))
	log.Info("A", "one")
	log.Info("A", "two")
	log.Info("A", "three")

	for _, line := range mem.Lines() {
		fmt.Print(line)
	}
	// Output:
	// [2] I : [A] two
	// [3] I : [A] three
}
