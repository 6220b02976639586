/*
Package config loads optional i18nsub settings.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Running with no config at all is the normal case: Default() returns the
  built-in Home page rules against src/pages/Home.tsx.
- A config file can point at another target, add rules after the built-in
  ones, or turn the built-in rules off.

🔄 Flow:
1. Pick a parser by file extension (Register / GetParser)
2. Decode, rejecting unknown fields
3. Validate and fill defaults
4. EffectiveRules() yields the ordered rule list for the run

🔍 Example (HCL):

	target  = default_target
	builtin = true

	rule {
	  pattern     = "Contact Us"
	  replacement = "{t.pages.home.contact}"
	  file        = "*.tsx"
	}
*/
package config
