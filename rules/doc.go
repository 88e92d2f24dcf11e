// Package rules mines frequent itemsets and pairwise association rules from
// transaction records.
//
// Pipeline:
//
//  1. Group records by transaction. Transactions and items get dense ids in
//     first-seen order; an item repeated inside one transaction counts once
//     and its weights are summed.
//  2. Score single items. Unweighted support is the share of transactions
//     containing the item; weighted support is its weight over the weight of
//     all records.
//  3. Grow frequent itemsets level by level (Apriori). Pairs are counted from
//     actual co-occurrences; larger candidates come from prefix joins of the
//     previous level, pruned when any subset is infrequent. Weighted itemset
//     support takes the smallest member weight in each transaction, which
//     keeps support anti-monotone.
//  4. Derive rules a→c from frequent pairs:
//
//	confidence(a→c) = support({a,c}) / support(a)
//	lift(a→c)       = confidence(a→c) / support(c)
//
//  5. Label patterns: connected components of the graph whose edges are the
//     retained rules, numbered from 1 in item order.
//
// Transactions with more distinct items than MaxItemsetSize still count
// towards single-item support but not towards co-occurrence. MaxCandidates
// caps each level; hitting it stops mining at the previous level, sets
// Result.Truncated and logs a warning.
package rules
