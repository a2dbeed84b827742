// Validates YAML catalog override files before they reach a running server.
// Usage: catalog-lint [dir]   (default ./catalog-overrides)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"moneytree/catalog"
	"moneytree/models"
	"moneytree/storage"
)

func main() {
	dir := "./catalog-overrides"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := globYAML(dir)
	if err != nil {
		fmt.Println("error: cannot read", dir+":", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("no .yaml/.yml catalog files found in", dir)
		return
	}

	exitCode := 0
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			fmt.Printf("%s: read error: %v\n", f, err)
			exitCode = 1
			continue
		}
		var doc catalog.File
		if err := yaml.Unmarshal(data, &doc); err != nil {
			fmt.Printf("%s: parse error: %v\n", f, err)
			exitCode = 1
			continue
		}
		fmt.Printf("%s: OK\n", f)
	}

	// Merge everything over the built-ins and run the same validation the
	// server applies at seed time.
	store := storage.NewMemStore()
	if err := catalog.Seed(store, dir); err != nil {
		fmt.Println("seed check failed:", err)
		os.Exit(1)
	}

	quests, _ := store.GetAllQuests()
	total := 0
	for _, quest := range quests {
		total += len(quest.Questions)
	}
	achievements, _ := store.GetAllAchievements()
	for _, achievement := range achievements {
		switch achievement.Requirements.Type {
		case models.RequirementCompleteCategory, models.RequirementStreakAndCategory:
		default:
			fmt.Printf("achievement %s: unknown requirement type %q\n",
				achievement.ID, achievement.Requirements.Type)
			exitCode = 1
		}
	}

	fmt.Printf("catalog: %d quests, %d questions, %d achievements\n", len(quests), total, len(achievements))
	os.Exit(exitCode)
}

func globYAML(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matched, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matched...)
	}
	return files, nil
}
