package nlrule

// Rule maps a natural-language trigger to a command template.
// Pattern is a regular expression matched against the lowercased input;
// Template may reference capture groups as $1 or ${name}.
type Rule struct {
	Name     string `yaml:"name"`
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// Match is the outcome of applying a rule: the synthesized command line
// and the rule that produced it.
type Match struct {
	Rule    Rule
	Command string
}
