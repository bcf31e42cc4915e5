// Package cmd provides command-line commands for the socialgraph
// service.
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

const (
	maxFixtureFileSize = 10 * 1024 * 1024
	defaultTimeout     = 30 * time.Second
)

// Fixture is the YAML seed file format. Entities reference each other
// by alias because ids are assigned by the server.
type Fixture struct {
	Users []struct {
		Alias     string `yaml:"alias"`
		FirstName string `yaml:"firstName"`
		LastName  string `yaml:"lastName"`
		Email     string `yaml:"email"`
	} `yaml:"users"`

	Profiles []struct {
		User         string `yaml:"user"`
		Avatar       string `yaml:"avatar"`
		Sex          string `yaml:"sex"`
		Birthday     int    `yaml:"birthday"`
		Country      string `yaml:"country"`
		Street       string `yaml:"street"`
		City         string `yaml:"city"`
		MemberTypeID string `yaml:"memberTypeId"`
	} `yaml:"profiles"`

	Posts []struct {
		User    string `yaml:"user"`
		Title   string `yaml:"title"`
		Content string `yaml:"content"`
	} `yaml:"posts"`

	Subscriptions []struct {
		User         string `yaml:"user"`
		SubscribesTo string `yaml:"subscribesTo"`
	} `yaml:"subscriptions"`
}

// LoadFixture reads and parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	if strings.Contains(path, "..") {
		return nil, fmt.Errorf("invalid fixture path: %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fixture file: %w", err)
	}
	if info.Size() > maxFixtureFileSize {
		return nil, fmt.Errorf("fixture file exceeds %d bytes", maxFixtureFileSize)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture file: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	for _, u := range f.Users {
		if u.Alias == "" {
			return nil, fmt.Errorf("every user in the fixture needs an alias")
		}
	}
	return &f, nil
}

// Seeder replays a fixture against a running server over REST.
type Seeder struct {
	Server string
	Client *http.Client
}

func (s *Seeder) post(path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := s.Client.Post(s.Server+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: %s", path, resp.Status, strings.TrimSpace(string(raw)))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Run seeds users first, so aliases resolve to server-assigned ids
// before the dependent entities are created.
func (s *Seeder) Run(f *Fixture) error {
	ids := make(map[string]string, len(f.Users))

	for _, u := range f.Users {
		var created struct {
			ID string `json:"id"`
		}
		payload := map[string]string{
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"email":     u.Email,
		}
		if err := s.post("/api/users", payload, &created); err != nil {
			return fmt.Errorf("user %q: %w", u.Alias, err)
		}
		ids[u.Alias] = created.ID
	}

	resolve := func(alias string) (string, error) {
		id, ok := ids[alias]
		if !ok {
			return "", fmt.Errorf("unknown user alias %q", alias)
		}
		return id, nil
	}

	for _, p := range f.Profiles {
		userID, err := resolve(p.User)
		if err != nil {
			return err
		}
		payload := map[string]interface{}{
			"avatar": p.Avatar, "sex": p.Sex, "birthday": p.Birthday,
			"country": p.Country, "street": p.Street, "city": p.City,
			"memberTypeId": p.MemberTypeID, "userId": userID,
		}
		if err := s.post("/api/profiles", payload, nil); err != nil {
			return fmt.Errorf("profile for %q: %w", p.User, err)
		}
	}

	for _, p := range f.Posts {
		userID, err := resolve(p.User)
		if err != nil {
			return err
		}
		payload := map[string]string{"title": p.Title, "content": p.Content, "userId": userID}
		if err := s.post("/api/posts", payload, nil); err != nil {
			return fmt.Errorf("post for %q: %w", p.User, err)
		}
	}

	for _, sub := range f.Subscriptions {
		userID, err := resolve(sub.User)
		if err != nil {
			return err
		}
		targetID, err := resolve(sub.SubscribesTo)
		if err != nil {
			return err
		}
		path := fmt.Sprintf("/api/users/%s/subscribe-to", targetID)
		if err := s.post(path, map[string]string{"userId": userID}, nil); err != nil {
			return fmt.Errorf("subscription %q -> %q: %w", sub.User, sub.SubscribesTo, err)
		}
	}
	return nil
}

// NewSeedCmd creates the seed command.
func NewSeedCmd() *cobra.Command {
	var (
		file    string
		server  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML fixture into a running server",
		Long:  "Reads a YAML fixture file and replays it against a running server over the REST API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := LoadFixture(file)
			if err != nil {
				errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
				return err
			}

			infoColor.Printf("seeding %s into %s\n", file, server)
			spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Suffix = " seeding..."
			spin.Start()

			seeder := &Seeder{
				Server: strings.TrimRight(server, "/"),
				Client: &http.Client{Timeout: timeout},
			}
			err = seeder.Run(fixture)
			spin.Stop()

			if err != nil {
				errorColor.Fprintf(os.Stderr, "✗ seeding failed: %v\n", err)
				return err
			}
			successColor.Printf("✓ seeded %d users, %d profiles, %d posts, %d subscriptions\n",
				len(fixture.Users), len(fixture.Profiles), len(fixture.Posts), len(fixture.Subscriptions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "fixture file to load")
	cmd.Flags().StringVarP(&server, "server", "s", "http://localhost:8080", "server base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultTimeout, "HTTP client timeout")
	return cmd
}
