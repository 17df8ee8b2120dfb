/*
Package config loads rename rule tables from files.

The built-in EJML table lives in package rules. A rule file replaces it when
a different migration is needed. The format follows the file extension:

	.yaml / .yml   gopkg.in/yaml.v3, unknown fields rejected
	.json          encoding/json, unknown fields rejected
	.hcl           HCL with one "rule" block per rule

A top-level glob applies to every rule that does not set its own. Without
one, rules default to *.java.

YAML:

	glob: "*.java"
	rules:
	  - find: CommonOps.
	    replace: CommonOps_R64.

HCL (default_glob is available as a variable):

	glob = default_glob

	rule {
	  find    = "CommonOps."
	  replace = "CommonOps_R64."
	}
*/
package config
