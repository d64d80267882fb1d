package model

// Language identifies the flavour of source a definition was extracted from.
type Language string

const (
	// LanguageC is a C function definition from a .c or .h file.
	LanguageC Language = "c"
	// LanguageFortran is a legacy function/subroutine block.
	LanguageFortran Language = "fortran"
)

// ExtractedDefinition is the definition chosen for a target function.
type ExtractedDefinition struct {
	Language       Language
	SourcePath     Path
	DefinitionText string
	// Prototype is the qualifier-free signature terminated by ';'. It is
	// empty for Fortran routines.
	Prototype string
}

// Declaration is a forward declaration found in a module header. The zero
// value means no declaration was found.
type Declaration struct {
	DocComment string
	Prototype  string
	HeaderPath Path
}

// Found reports whether the declaration was located.
func (d Declaration) Found() bool {
	return d.Prototype != ""
}

// HeaderFile is a header copied into a target's output directory.
type HeaderFile struct {
	OriginalPath  Path
	FlattenedName string
	Content       string
}

// GeneratedFile is one file of a target's output directory.
type GeneratedFile struct {
	Name    string
	Content string
}
