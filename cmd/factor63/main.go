// Command factor63 is a small CLI driver: it reads decimal integers, one
// per line from stdin or one per argument, factors each with package
// factor63, and prints the factorization. It owns argument parsing and
// output formatting only; all the arithmetic lives in package factor63.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/arbooker/factor63/factor63"
)

func main() {
	dbPath := flag.String("db", "factor.bin", "path to the factor63 precomputed database")
	flag.Parse()

	db, err := factor63.Init(*dbPath)
	if err != nil {
		log.Fatalf("cannot read factor data: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		runStdin(db)
		return
	}
	runArgs(db, args)
}

func runStdin(db *factor63.Database) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		n, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			continue
		}
		factors, ok := db.Factor(n)
		if !ok {
			fmt.Printf("%d:\n", n)
			continue
		}
		sortFactors(factors)
		fmt.Printf("%d:", n)
		for _, fa := range factors {
			for e := 0; e < fa.Exponent; e++ {
				fmt.Printf(" %d", fa.Prime)
			}
		}
		fmt.Println()
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func runArgs(db *factor63.Database, args []string) {
	for _, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			log.Printf("skipping %q: %v", a, err)
			continue
		}
		factors, ok := db.Factor(n)
		if !ok {
			fmt.Printf("%d\n", n)
			continue
		}
		sortFactors(factors)
		fmt.Printf("%d", n)
		for i, fa := range factors {
			sep := "*"
			if i == 0 {
				sep = "="
			}
			if fa.Exponent > 1 {
				fmt.Printf(" %s %d^%d", sep, fa.Prime, fa.Exponent)
			} else {
				fmt.Printf(" %s %d", sep, fa.Prime)
			}
		}
		fmt.Println()
	}
}
