package helix

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/McClain-Thiel/helix/config"
	_ "github.com/mattn/go-sqlite3" // sqlite driver for the components db
	"github.com/spf13/cobra"
)

// Component is a well-characterized DNA part that can be recognized in a
// target sequence via alignment: an origin of replication, a resistance
// gene, a promoter, a terminator, a tag, etc
type Component struct {
	// ID of the component in the database (assigned on insert)
	ID int64 `json:"id"`

	// Name of the component, eg "AmpR" or "T7 promoter"
	Name string `json:"name"`

	// Category matching feature types: "cds", "promoter", "terminator", "ori", etc
	Category string `json:"category"`

	// Seq is the uppercase sequence of the component
	Seq string `json:"seq"`

	// Length of the sequence
	Length int `json:"length"`

	// Description free text
	Description string `json:"description,omitempty"`

	// Organism the component comes from, if applicable
	Organism string `json:"organism,omitempty"`

	// Builtin is true when the component ships with helix rather than
	// being added by the user
	Builtin bool `json:"builtin"`

	// Accession in GenBank/AddGene, if known
	Accession string `json:"accession,omitempty"`

	// Color used when rendering the component on a map
	Color string `json:"color,omitempty"`
}

// ComponentDB is a store of components, persisted to a local sqlite file
type ComponentDB struct {
	db *sql.DB
}

// NewComponentDB opens (creating and seeding if necessary) the components
// database at the passed path
func NewComponentDB(path string) (*ComponentDB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create db directory %s: %v", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open components db at %s: %v", path, err)
	}

	c := &ComponentDB{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := c.Seed(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

// Close the underlying database
func (c *ComponentDB) Close() error {
	return c.db.Close()
}

// init creates the components table if it does not exist
func (c *ComponentDB) init() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS components (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL,
		sequence    TEXT NOT NULL,
		length      INTEGER NOT NULL,
		description TEXT,
		organism    TEXT,
		is_builtin  INTEGER NOT NULL DEFAULT 1,
		accession   TEXT,
		color       TEXT,
		created_at  TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE(name, sequence)
	);
	CREATE INDEX IF NOT EXISTS idx_components_category ON components(category);
	CREATE INDEX IF NOT EXISTS idx_components_length ON components(length);`)
	if err != nil {
		return fmt.Errorf("failed to create components table: %v", err)
	}
	return nil
}

// Seed inserts the built-in components. Idempotent via INSERT OR IGNORE.
// Returns the number of newly inserted rows
func (c *ComponentDB) Seed() (int, error) {
	count := 0
	for _, comp := range builtinComponents() {
		result, err := c.db.Exec(
			`INSERT OR IGNORE INTO components
				(name, category, sequence, length, description, organism, is_builtin, accession, color)
			VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)`,
			comp.Name,
			comp.Category,
			comp.Seq,
			len(comp.Seq),
			nullable(comp.Description),
			nullable(comp.Organism),
			nullable(comp.Accession),
			nullable(comp.Color),
		)
		if err != nil {
			return count, fmt.Errorf("failed to seed component %s: %v", comp.Name, err)
		}

		changed, _ := result.RowsAffected()
		count += int(changed)
	}
	return count, nil
}

const componentColumns = `id, name, category, sequence, length, description, organism, is_builtin, accession, color`

// Components returns components, optionally filtered by category
func (c *ComponentDB) Components(category string) ([]Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components ORDER BY name`
	args := []interface{}{}
	if category != "" {
		query = `SELECT ` + componentColumns + ` FROM components WHERE category = ? ORDER BY name`
		args = append(args, category)
	}

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query components: %v", err)
	}
	defer rows.Close()

	return scanComponents(rows)
}

// Component returns a single component by its id, or nil if absent
func (c *ComponentDB) Component(id int64) (*Component, error) {
	rows, err := c.db.Query(`SELECT `+componentColumns+` FROM components WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query component %d: %v", id, err)
	}
	defer rows.Close()

	comps, err := scanComponents(rows)
	if err != nil || len(comps) == 0 {
		return nil, err
	}
	return &comps[0], nil
}

// Search returns components whose names contain the passed name
// (case-insensitive)
func (c *ComponentDB) Search(name string) ([]Component, error) {
	rows, err := c.db.Query(
		`SELECT `+componentColumns+` FROM components WHERE name LIKE ? ORDER BY name`,
		"%"+name+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search components: %v", err)
	}
	defer rows.Close()

	return scanComponents(rows)
}

// Add inserts a user-defined component and returns its new id
func (c *ComponentDB) Add(comp Component) (int64, error) {
	result, err := c.db.Exec(
		`INSERT INTO components
			(name, category, sequence, length, description, organism, is_builtin, accession, color)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		comp.Name,
		comp.Category,
		strings.ToUpper(comp.Seq),
		len(comp.Seq),
		nullable(comp.Description),
		nullable(comp.Organism),
		nullable(comp.Accession),
		nullable(comp.Color),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add component %s: %v", comp.Name, err)
	}
	return result.LastInsertId()
}

// Delete removes a user-defined component. Built-ins cannot be deleted.
// Returns true if a row was deleted
func (c *ComponentDB) Delete(id int64) (bool, error) {
	result, err := c.db.Exec(`DELETE FROM components WHERE id = ? AND is_builtin = 0`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete component %d: %v", id, err)
	}

	changed, err := result.RowsAffected()
	return changed > 0, err
}

// scanComponents reads rows out into Components
func scanComponents(rows *sql.Rows) ([]Component, error) {
	var comps []Component
	for rows.Next() {
		var comp Component
		var builtin int
		var description, organism, accession, color sql.NullString

		if err := rows.Scan(
			&comp.ID,
			&comp.Name,
			&comp.Category,
			&comp.Seq,
			&comp.Length,
			&description,
			&organism,
			&builtin,
			&accession,
			&color,
		); err != nil {
			return nil, fmt.Errorf("failed to scan component row: %v", err)
		}

		comp.Description = description.String
		comp.Organism = organism.String
		comp.Builtin = builtin != 0
		comp.Accession = accession.String
		comp.Color = color.String

		comps = append(comps, comp)
	}
	return comps, rows.Err()
}

// nullable stores empty strings as NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// ComponentFindCmd logs components similar in name to the one requested.
// Without arguments, all components are logged
func ComponentFindCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	db, err := NewComponentDB(conf.DB)
	if err != nil {
		stderr.Fatalln(err)
	}
	defer db.Close()

	var comps []Component
	if len(args) < 1 {
		category, _ := cmd.Flags().GetString("category")
		comps, err = db.Components(category)
	} else {
		comps, err = db.Search(strings.Join(args, " "))
	}
	if err != nil {
		stderr.Fatalln(err)
	}

	if len(comps) < 1 {
		fmt.Printf("failed to find any components for %s\n", strings.Join(args, " "))
		return
	}

	// print their names, categories and the first few bp
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, comp := range comps {
		seq := comp.Seq
		if len(seq) > 20 {
			seq = seq[:20] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", comp.ID, comp.Name, comp.Category, seq)
	}
	w.Flush()
}

// ComponentSetCmd adds a component to the components database
func ComponentSetCmd(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		cmd.Help()
		stderr.Fatalln("\nexpecting two args: a component name and sequence.")
	}

	name := args[0]
	seq := args[1]
	if len(args) > 2 {
		name = strings.Join(args[:len(args)-1], " ")
		seq = args[len(args)-1]
	}

	category, _ := cmd.Flags().GetString("category")
	color, _ := cmd.Flags().GetString("color")
	description, _ := cmd.Flags().GetString("description")
	organism, _ := cmd.Flags().GetString("organism")

	conf := config.New()
	db, err := NewComponentDB(conf.DB)
	if err != nil {
		stderr.Fatalln(err)
	}
	defer db.Close()

	id, err := db.Add(Component{
		Name:        name,
		Category:    category,
		Seq:         seq,
		Description: description,
		Organism:    organism,
		Color:       color,
	})
	if err != nil {
		stderr.Fatalln(err)
	}

	fmt.Printf("added %s to the components database (id %d)\n", name, id)
}

// ComponentDeleteCmd removes a user component from the components database
func ComponentDeleteCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno component id passed.")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		stderr.Fatalf("failed to parse component id %s: %v", args[0], err)
	}

	conf := config.New()
	db, err := NewComponentDB(conf.DB)
	if err != nil {
		stderr.Fatalln(err)
	}
	defer db.Close()

	deleted, err := db.Delete(id)
	if err != nil {
		stderr.Fatalln(err)
	}

	if deleted {
		fmt.Printf("deleted component %d from the components database\n", id)
	} else {
		fmt.Printf("failed to find a user component with id %d (built-ins cannot be deleted)\n", id)
	}
}
