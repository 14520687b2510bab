package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
)

const defaultAPIBase = "http://localhost:8080/api/v1"

var (
	tiers     = []string{"S", "A", "B", "C", "D"}
	positions = []string{"PG", "SG", "SF", "PF", "C"}
	names     = []string{
		"Hoops", "Buckets", "Dime", "Swish", "Glass", "Handles", "Splash", "Board",
		"Lob", "Brick", "Rim", "Fade", "Post", "Wing", "Flash", "Pivot",
		"Steal", "Block", "Crossover", "Floater",
	}
)

type Player struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SkillTier string   `json:"skillTier"`
	Positions []string `json:"positions"`
}

type Team struct {
	Players    []Player `json:"players"`
	SkillTotal int      `json:"skillTotal"`
	Coverage   []string `json:"coverage"`
}

type Proposition struct {
	Type        string `json:"type"`
	Source      string `json:"source"`
	SkillSpread int    `json:"skillSpread"`
	Teams       []Team `json:"teams"`
}

type PropositionsResponse struct {
	Plan struct {
		NumberOfTeams     int `json:"numberOfTeams"`
		MinPlayersPerTeam int `json:"minPlayersPerTeam"`
		MaxPlayersPerTeam int `json:"maxPlayersPerTeam"`
	} `json:"plan"`
	Propositions []Proposition `json:"propositions"`
}

func postJSON(url string, body interface{}, out interface{}) error {
	return sendJSON(http.MethodPost, url, body, out)
}

func putJSON(url string, body interface{}, out interface{}) error {
	return sendJSON(http.MethodPut, url, body, out)
}

func sendJSON(method, url string, body interface{}, out interface{}) error {
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequest(method, url, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

// seedPlayer builds the i-th demo player. Ids are fixed so reruns replace
// the same roster instead of growing it.
func seedPlayer(rng *rand.Rand, i int) Player {
	count := 1 + rng.Intn(2)
	picked := rng.Perm(len(positions))[:count]
	playerPositions := make([]string, count)
	for j, idx := range picked {
		playerPositions[j] = positions[idx]
	}
	return Player{
		ID:        fmt.Sprintf("seed-%02d", i+1),
		Name:      fmt.Sprintf("%s %d", names[i%len(names)], i+1),
		SkillTier: tiers[rng.Intn(len(tiers))],
		Positions: playerPositions,
	}
}

func main() {
	apiBase := os.Getenv("API_BASE")
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	count := 15
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid player count %q\n", os.Args[1])
			os.Exit(1)
		}
		count = n
	}

	rng := rand.New(rand.NewSource(42))

	fmt.Printf("Seeding %d players...\n", count)
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		player := seedPlayer(rng, i)
		var created Player
		if err := putJSON(apiBase+"/players/"+player.ID, player, &created); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save player %d: %v\n", i+1, err)
			os.Exit(1)
		}
		ids = append(ids, created.ID)
		fmt.Printf("  ✓ %-14s %s %v\n", created.Name, created.SkillTier, created.Positions)
	}

	fmt.Println("\nRequesting propositions...")
	var result PropositionsResponse
	if err := postJSON(apiBase+"/propositions", map[string]interface{}{"playerIds": ids}, &result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate propositions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n" + "============================================================")
	fmt.Printf("%d TEAMS OF %d-%d PLAYERS\n",
		result.Plan.NumberOfTeams, result.Plan.MinPlayersPerTeam, result.Plan.MaxPlayersPerTeam)
	fmt.Println("============================================================")

	for _, prop := range result.Propositions {
		fmt.Printf("\n%s (%s, skill spread %d)\n", prop.Type, prop.Source, prop.SkillSpread)
		for i, team := range prop.Teams {
			playerNames := make([]string, len(team.Players))
			for j, p := range team.Players {
				playerNames[j] = p.Name
			}
			fmt.Printf("  Team %d [skill %d, covers %s]: %s\n",
				i+1, team.SkillTotal, strings.Join(team.Coverage, "/"), strings.Join(playerNames, ", "))
		}
	}
}
