// Generates the ent client for the resume_files and parse_job schemas
// into gen/ent. Run from the repository root.
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/haroldmt/resume-parser/gen/ent",
			Schema:  "github.com/haroldmt/resume-parser/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
