// Package persist serializes a built rgraph.Graph to and from a SQLite
// file, so a caller can build a graph once and reload it across process
// restarts without re-running the builder.
package persist

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
	"github.com/ortholayer/gridroute/rgraph"
)

// ErrIO wraps every failure that originates from the underlying SQLite
// connection or file system, per the io-error taxonomy.
var ErrIO = errors.New("persist: io error")

const neighborSentinel = -1

// Serialize writes g to a SQLite database at path, creating the file if
// absent and dropping and recreating its tables if they already exist.
// Writes happen inside a single transaction: on
// any failure the file is left as it was before the call.
func Serialize(g *rgraph.Graph, path string) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", ErrIO, err)
	}
	defer tx.Rollback()

	if err := createSchema(tx); err != nil {
		return err
	}
	if err := writeNodes(tx, g.Nodes()); err != nil {
		return err
	}
	if err := writeObstacles(tx, g.Obstacles()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", ErrIO, err)
	}
	return nil
}

// Deserialize reads a graph previously written by Serialize from path,
// reconstructing the exact gnode.Store order and rgraph.Graph spatial
// index — every NodeIndex a caller held before serialization names the
// same node after deserialization.
func Deserialize(path string) (*rgraph.Graph, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	nodes, err := readNodes(db)
	if err != nil {
		return nil, err
	}
	obstacles, err := readObstacles(db)
	if err != nil {
		return nil, err
	}

	return rgraph.FromNodes(nodes, obstacles), nil
}

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func createSchema(tx *sql.Tx) error {
	stmts := []string{
		`DROP TABLE IF EXISTS nodes`,
		`DROP TABLE IF EXISTS neighbors`,
		`DROP TABLE IF EXISTS obstacles`,
		`CREATE TABLE nodes (
			id INTEGER PRIMARY KEY,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			is_anchor INTEGER NOT NULL,
			legal INTEGER NOT NULL
		)`,
		`CREATE TABLE neighbors (
			node_id INTEGER NOT NULL,
			direction INTEGER NOT NULL,
			neighbor_id INTEGER NOT NULL
		)`,
		`CREATE TABLE obstacles (
			id INTEGER PRIMARY KEY,
			center_x INTEGER NOT NULL,
			center_y INTEGER NOT NULL,
			half_width INTEGER NOT NULL,
			half_height INTEGER NOT NULL
		)`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return fmt.Errorf("%w: create schema: %v", ErrIO, err)
		}
	}
	return nil
}

func writeNodes(tx *sql.Tx, nodes []gnode.Node) error {
	nodeStmt, err := tx.Prepare(`INSERT INTO nodes (id, x, y, is_anchor, legal) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare node insert: %v", ErrIO, err)
	}
	defer nodeStmt.Close()

	neighborStmt, err := tx.Prepare(`INSERT INTO neighbors (node_id, direction, neighbor_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare neighbor insert: %v", ErrIO, err)
	}
	defer neighborStmt.Close()

	for i, n := range nodes {
		isAnchor := 0
		if n.IsAnchor {
			isAnchor = 1
		}
		if _, err := nodeStmt.Exec(i, n.Position.X, n.Position.Y, isAnchor, int(n.Legal)); err != nil {
			return fmt.Errorf("%w: insert node %d: %v", ErrIO, i, err)
		}
		for _, d := range geom.Singletons() {
			nb := n.Neighbors.Get(d)
			id := neighborSentinel
			if nb != gnode.Sentinel {
				id = int(nb)
			}
			if _, err := neighborStmt.Exec(i, int(d), id); err != nil {
				return fmt.Errorf("%w: insert neighbor of %d: %v", ErrIO, i, err)
			}
		}
	}
	return nil
}

func writeObstacles(tx *sql.Tx, boxes []geom.BoundingBox) error {
	stmt, err := tx.Prepare(`INSERT INTO obstacles (id, center_x, center_y, half_width, half_height) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare obstacle insert: %v", ErrIO, err)
	}
	defer stmt.Close()

	for i, b := range boxes {
		if _, err := stmt.Exec(i, b.Center.X, b.Center.Y, b.HalfWidth, b.HalfHeight); err != nil {
			return fmt.Errorf("%w: insert obstacle %d: %v", ErrIO, i, err)
		}
	}
	return nil
}

func readNodes(db *sql.DB) ([]gnode.Node, error) {
	rows, err := db.Query(`SELECT id, x, y, is_anchor, legal FROM nodes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query nodes: %v", ErrIO, err)
	}
	defer rows.Close()

	var nodes []gnode.Node
	for rows.Next() {
		var id int
		var x, y, isAnchor, legal int
		if err := rows.Scan(&id, &x, &y, &isAnchor, &legal); err != nil {
			return nil, fmt.Errorf("%w: scan node: %v", ErrIO, err)
		}
		nodes = append(nodes, gnode.Node{
			Position: geom.Point{X: int32(x), Y: int32(y)},
			IsAnchor: isAnchor != 0,
			Legal:    geom.Direction(legal),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate nodes: %v", ErrIO, err)
	}

	nrows, err := db.Query(`SELECT node_id, direction, neighbor_id FROM neighbors`)
	if err != nil {
		return nil, fmt.Errorf("%w: query neighbors: %v", ErrIO, err)
	}
	defer nrows.Close()

	for nrows.Next() {
		var nodeID, direction, neighborID int
		if err := nrows.Scan(&nodeID, &direction, &neighborID); err != nil {
			return nil, fmt.Errorf("%w: scan neighbor: %v", ErrIO, err)
		}
		idx := gnode.NodeIndex(neighborSentinelToNode(neighborID))
		nodes[nodeID].Neighbors.Set(geom.Direction(direction), idx)
	}
	if err := nrows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate neighbors: %v", ErrIO, err)
	}

	return nodes, nil
}

func neighborSentinelToNode(id int) uint32 {
	if id == neighborSentinel {
		return uint32(gnode.Sentinel)
	}
	return uint32(id)
}

func readObstacles(db *sql.DB) ([]geom.BoundingBox, error) {
	rows, err := db.Query(`SELECT center_x, center_y, half_width, half_height FROM obstacles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query obstacles: %v", ErrIO, err)
	}
	defer rows.Close()

	var boxes []geom.BoundingBox
	for rows.Next() {
		var cx, cy int32
		var hw, hh uint16
		if err := rows.Scan(&cx, &cy, &hw, &hh); err != nil {
			return nil, fmt.Errorf("%w: scan obstacle: %v", ErrIO, err)
		}
		boxes = append(boxes, geom.BoundingBox{Center: geom.Point{X: cx, Y: cy}, HalfWidth: hw, HalfHeight: hh})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate obstacles: %v", ErrIO, err)
	}
	return boxes, nil
}
