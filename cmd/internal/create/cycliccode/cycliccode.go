package cycliccode

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jaredallen/cycliccode/cyclic/poly"
	"github.com/jaredallen/cycliccode/gf2"
)

var (
	Generator string
	Length    uint
	Threads   uint
	Verbose   bool
)

var CyclicRun = func(cmd *cobra.Command, args []string) {
	//we seed the randomizer so we get something different every time
	rand.Seed(time.Now().Unix())

	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	g, err := strconv.ParseUint(Generator, 2, 64)
	if err != nil {
		fmt.Println("the generator polynomial must be a binary string (lowest degree coefficient last): ", err)
		return
	}

	code, err := poly.FromGenerator(ctx, gf2.Word(g), int(Length), int(Threads))
	if err != nil {
		fmt.Println("Unable to create cyclic code: ", err)
		return
	}

	bs, err := json.Marshal(code)
	if err != nil {
		fmt.Println("Unable to serialize the cyclic code: ", err)
		return
	}

	err = ioutil.WriteFile(args[0], bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}
