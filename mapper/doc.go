// Package mapper converts Enterprise Architect tables into Turtle.
//
// Each source table is described by a Mapping: the class of the subjects it
// produces, the column holding the subject id and an ordered list of
// fields. A single routine walks any row through its mapping, so adding a
// column is a one-line change to the table below. t_xref is the exception:
// its Description column packs several properties into one string and is
// handled by a dedicated parser.
//
// The Converter runs the tables in a fixed order against a storage.Source
// and streams the document to an io.Writer:
//
//	src, err := storage.OpenSQLite(ctx, "model.qea")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	stats, err := mapper.NewConverter(src, os.Stdout).Run(ctx)
package mapper
