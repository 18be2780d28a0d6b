package main

import (
	"bufio"
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/kant/landscapemetrics/pkg/landscape/config"
	"github.com/kant/landscapemetrics/pkg/landscape/corpus"
	"github.com/kant/landscapemetrics/pkg/landscape/store"
	"github.com/kant/landscapemetrics/pkg/landscape/store/sqlite"
)

type page struct {
	url   string
	title string
	text  string
}

func main() {
	var (
		dbPath      = flag.String("db", "", "Corpus SQLite database (required)")
		urlsPath    = flag.String("urls", "", "Optional file with one URL per line")
		stoplistCfg = flag.String("stoplist", "", "Optional stoplist YAML")
		concurrency = flag.Int("concurrency", 4, "Concurrent fetches")
		timeout     = flag.Duration("timeout", 15*time.Second, "Per-request timeout")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	urls := flag.Args()
	if *urlsPath != "" {
		fromFile, err := readURLs(*urlsPath)
		if err != nil {
			log.Fatal("Failed to read URL list:", err)
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		log.Fatal("no URLs given (positional args or --urls)")
	}

	var stopwords []string
	if *stoplistCfg != "" {
		sl, err := config.LoadStoplist(*stoplistCfg)
		if err != nil {
			log.Fatal("Failed to load stoplist:", err)
		}
		stopwords = sl.Terms
	}
	tokenizer := corpus.NewTokenizer(stopwords)

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open corpus database:", err)
	}
	defer st.Close()

	client := &http.Client{Timeout: *timeout}

	// Fetch concurrently, then tokenize and store in one pass so
	// ULID minting and writes stay single-threaded.
	pages := make([]*page, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			p, err := fetch(gctx, client, u)
			if err != nil {
				log.Printf("Failed to fetch %s: %v", u, err)
				return nil // keep going; a bad page is not fatal
			}
			pages[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("Fetch aborted:", err)
	}

	entropy := ulid.Monotonic(rand.Reader, 0)
	stored := 0
	for _, p := range pages {
		if p == nil {
			continue
		}

		tokens := tokenizer.Tokenize(p.text)
		if len(tokens) == 0 {
			log.Printf("Skipping %s: no tokens after filtering", p.url)
			continue
		}

		doc := store.Doc{
			ID:        ulid.MustNew(ulid.Now(), entropy).String(),
			URL:       p.url,
			Title:     p.title,
			FetchedAt: time.Now(),
			Tokens:    tokens,
		}
		if err := st.PutDoc(ctx, doc); err != nil {
			log.Printf("Failed to store %s: %v", p.url, err)
			continue
		}
		stored++
	}

	log.Printf("Stored %d/%d documents in %s", stored, len(urls), *dbPath)
}

func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}

func fetch(ctx context.Context, client *http.Client, url string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	title, text := extractText(string(body))
	return &page{url: url, title: title, text: text}, nil
}

// extractText pulls the title and the visible text out of an HTML page.
func extractText(s string) (string, string) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw payload if parsing fails
		return "", s
	}

	var title string
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title, strings.TrimSpace(buf.String())
}
