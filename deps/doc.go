// Package deps analyses the point dependencies of a construction program.
//
// Every Sample, Compute and Parameterize instruction defines points; every
// instruction may reference points defined elsewhere. Build turns a program
// into a directed graph over instructions (user → definer) and offers:
//
//	Order      a definition-before-use instruction order (DFS post-order),
//	           stable for already ordered programs; cycles are rejected
//	Unused     points no other instruction references
//	Ancestors  the transitive dependencies of one point
//
// The evaluator itself only accepts programs in definition-before-use order;
// Order lets frontends emit instructions in any order.
//
// Complexity:
//
//   - Build: O(I + R) for I instructions and R point references
//   - Order, Ancestors: O(I + R)
//   - Unused: O(P) for P defined points
package deps
