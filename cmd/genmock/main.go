// Command genmock writes a synthetic access-log export for manual runs and
// demos. The file looks like the terminal software's output: Latin-1,
// semicolon-delimited, accented "ESTAÇÃO" header, some blank names and a few
// unparseable dates.
//
// Usage:
//
//	go run ./cmd/genmock -out Baixados -rows 2000 -users 40 -seed 7
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var header = []string{"USUARIO", "NOME USUARIO", "DATA", "ESTAÇÃO", "EVENTO"}

// accented first names exercise the Latin-1 encoding path.
var accented = []string{"João", "José", "Antônio", "Conceição", "Inês", "Márcia", "Sebastião", "Lúcia"}

var events = []string{"ACESSO LIBERADO", "ACESSO NEGADO", "ENTRADA", "SAIDA"}

type options struct {
	rows     int
	users    int
	stations int
	blankPct int
	badPct   int
	day      time.Time
	seed     int64
}

type user struct {
	id   string
	name string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "Baixados", "directory to write the export into")
	rows := flag.Int("rows", 1000, "number of log rows")
	users := flag.Int("users", 25, "number of distinct users")
	stations := flag.Int("stations", 4, "number of stations")
	blankPct := flag.Int("blank-names", 10, "percent of rows with a blank NOME USUARIO")
	badPct := flag.Int("bad-dates", 2, "percent of rows with an unparseable DATA")
	day := flag.String("day", time.Now().Format("2006-01-02"), "day the events happen on (YYYY-MM-DD)")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	d, err := time.ParseInLocation("2006-01-02", *day, time.Local)
	if err != nil {
		return fmt.Errorf("invalid -day: %w", err)
	}
	if *rows < 0 || *users < 1 || *stations < 1 {
		flag.Usage()
		return fmt.Errorf("-rows must be >= 0, -users and -stations >= 1")
	}

	path := filepath.Join(*out, fmt.Sprintf("export_%s.csv", time.Now().Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := options{
		rows: *rows, users: *users, stations: *stations,
		blankPct: *blankPct, badPct: *badPct, day: d, seed: *seed,
	}
	if err := generate(f, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %d rows to %s\n", *rows, path)
	return nil
}

// generate writes a Latin-1 export to w. Characters outside Latin-1 are
// replaced rather than failing the write.
func generate(w io.Writer, opts options) error {
	faker := gofakeit.New(opts.seed)

	people := make([]user, opts.users)
	for i := range people {
		first := faker.FirstName()
		if faker.Number(0, 2) == 0 {
			first = faker.RandomString(accented)
		}
		people[i] = user{
			id:   strconv.Itoa(faker.Number(1, 99999)),
			name: first + " " + faker.LastName(),
		}
	}

	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	tw := transform.NewWriter(w, enc)
	cw := csv.NewWriter(tw)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return err
	}

	start := opts.day
	end := start.Add(24*time.Hour - time.Second)
	for i := 0; i < opts.rows; i++ {
		u := people[faker.Number(0, len(people)-1)]

		name := u.name
		if faker.Number(1, 100) <= opts.blankPct {
			name = ""
		}
		date := faker.DateRange(start, end).Format("02/01/2006 15:04:05")
		if faker.Number(1, 100) <= opts.badPct {
			date = "--/--/---- --:--"
		}

		rec := []string{
			u.id,
			name,
			date,
			strconv.Itoa(faker.Number(1, opts.stations)),
			faker.RandomString(events),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return tw.Close()
}
