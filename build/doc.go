// Package build runs sitegen over a project: it loads the site data,
// validates every placeholder in the target files, rewrites the targets and
// regenerates the data script, printing a report of what it did.
//
// All paths come from an explicit [Config], so a run can be pointed at any
// directory tree. [Run] decides whether missing keys fail the run based on
// its [Mode]; the site package only reports them.
package build
