// Package vote defines refresh-rate votes and their priority tiers.
//
// A vote is an acceptable refresh-rate range tagged with a priority tier.
// Policy sources (user settings, app requests, power management,
// accessibility) each own one tier and submit at most one vote per display
// per arbitration cycle. The arbiter only relies on the total order and
// bounds of the tiers; what each tier means is producer-side policy.
package vote
