// Package costs contains the cost and performance analysis figures: network
// cost comparison, infrastructure breakdown, total cost of ownership,
// deployment gas breakdowns, and per-operation gas comparisons. Every figure
// embeds its dataset as package literals taken from the paper's gas reports
// and pricing tables.
package costs
