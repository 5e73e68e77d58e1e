// Package tools defines the contract between a driving agent and the simulator tools:
// a tool has a name, a description and a JSON schema of its parameters,
// and is called with raw JSON arguments. Toolbox invokes tools by name.
package tools
