package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/kant/landscapemetrics/pkg/landscape/config"
	"github.com/kant/landscapemetrics/pkg/landscape/cooc"
	"github.com/kant/landscapemetrics/pkg/landscape/corpus"
	"github.com/kant/landscapemetrics/pkg/landscape/neighborhood"
	"github.com/kant/landscapemetrics/pkg/landscape/raster"
	"github.com/kant/landscapemetrics/pkg/landscape/store/sqlite"
)

type report struct {
	RunID      string      `json:"run_id"`
	Rows       int         `json:"rows"`
	Cols       int         `json:"cols"`
	Classes    int         `json:"classes"`
	Ordered    bool        `json:"ordered"`
	Workers    int         `json:"workers"`
	Directions [][]int     `json:"directions"`
	VectorLen  int         `json:"vector_len"`
	TotalCount float64     `json:"total_count"`
	TopPairs   []pairEntry `json:"top_pairs"`
}

type pairEntry struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	TokenA string  `json:"token_a,omitempty"`
	TokenB string  `json:"token_b,omitempty"`
	Count  float64 `json:"count"`
}

func main() {
	var (
		gridPath   = flag.String("grid", "", "Path to ASCII matrix file")
		corpusPath = flag.String("corpus", "", "Path to corpus SQLite database")
		cfgPath    = flag.String("config", "", "Optional job config YAML")
		ordered    = flag.Bool("ordered", true, "Count ordered pairs (default when config is silent)")
		workers    = flag.Int("workers", 1, "Worker goroutines (default when config is silent)")
		classes    = flag.Int("classes", 0, "Fixed class count, 0 = discover from input")
		top        = flag.Int("top", 20, "Number of top pairs to report, 0 = all")
	)
	flag.Parse()

	if (*gridPath == "") == (*corpusPath == "") {
		log.Fatal("exactly one of --grid or --corpus required")
	}

	job := &config.Job{}
	if *cfgPath != "" {
		loaded, err := config.LoadJob(*cfgPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
		job = loaded
	}
	if job.Ordered == nil {
		job.Ordered = ordered
	}
	if job.Workers == 0 {
		job.Workers = *workers
	}
	if job.Classes == 0 {
		job.Classes = *classes
	}

	dirs, err := job.DirectionSet()
	if err != nil {
		log.Fatal("Failed to resolve directions:", err)
	}

	var grid *raster.Grid
	var vocab *corpus.Vocabulary

	if *gridPath != "" {
		grid, err = raster.LoadASCII(*gridPath)
		if err != nil {
			log.Fatal("Failed to load grid:", err)
		}
	} else {
		grid, vocab, err = loadCorpusMatrix(*corpusPath)
		if err != nil {
			log.Fatal("Failed to load corpus:", err)
		}
	}

	opts := cooc.Options{
		Ordered: job.IsOrdered(),
		Workers: job.Workers,
		Classes: job.Classes,
	}
	vec, err := cooc.Compute(grid, dirs, opts)
	if err != nil {
		log.Fatal("Computation failed:", err)
	}

	v := opts.Classes
	if v == 0 {
		v = grid.MaxClass()
	}

	rep := report{
		RunID:      ulid.Make().String(),
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		Classes:    v,
		Ordered:    opts.Ordered,
		Workers:    opts.Workers,
		Directions: directionRows(dirs),
		VectorLen:  len(vec),
	}
	for _, n := range vec {
		rep.TotalCount += n
	}
	for _, p := range cooc.Top(vec, v, opts.Ordered, *top) {
		entry := pairEntry{A: p.A, B: p.B, Count: p.Count}
		if vocab != nil {
			entry.TokenA, _ = vocab.Token(p.A)
			entry.TokenB, _ = vocab.Token(p.B)
		}
		rep.TopPairs = append(rep.TopPairs, entry)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatal("Failed to encode report:", err)
	}
}

func loadCorpusMatrix(path string) (*raster.Grid, *corpus.Vocabulary, error) {
	ctx := context.Background()

	st, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer st.Close()

	docs, err := st.ListDocs(ctx, 0)
	if err != nil {
		return nil, nil, err
	}

	tokenDocs := make([][]string, len(docs))
	for i, d := range docs {
		tokenDocs[i] = d.Tokens
	}

	vocab := corpus.NewVocabulary()
	grid, err := corpus.BuildMatrix(tokenDocs, vocab)
	if err != nil {
		return nil, nil, err
	}
	return grid, vocab, nil
}

func directionRows(dirs neighborhood.Set) [][]int {
	rows := make([][]int, len(dirs))
	for i, o := range dirs {
		rows[i] = []int{o.DR, o.DC}
	}
	return rows
}
