package sa

import "math"

//////
// Acceptance rule of the annealing loop.
//////

// AcceptanceProbability returns the probability of moving from a position
// with currentEnergy to a candidate with candidateEnergy at the given
// temperature.
//
// How it works:
// - Improving moves (candidateEnergy > currentEnergy) are always accepted
// - Worsening or equal moves are accepted with exp((candidate-current)/temp)
// - The exponent is never positive, so the result is in (0, 1]
//
// Parameters:
// - currentEnergy: Objective value of the current position
// - candidateEnergy: Objective value of the sampled candidate
// - temperature: Current temperature, must be > 0
//
// Higher temperatures give higher probabilities for the same energy gap, so
// the search gets greedier as it cools.
//
// Energies are maximized here. The comparison and the sign of the exponent
// are the inverse of the textbook energy-minimization form.
//
// Example:
//
//	p := AcceptanceProbability(2.0, 1.5, 10) // exp(-0.05) ≈ 0.951
func AcceptanceProbability(currentEnergy, candidateEnergy, temperature float64) float64 {
	if candidateEnergy > currentEnergy {
		return 1.0
	}

	return math.Exp((candidateEnergy - currentEnergy) / temperature)
}
