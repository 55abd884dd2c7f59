package raptor

/* PatternFilter is the one-shot-per-search partition of active patterns into
   scheduled and frequency subsets (C2, §4.1). ScheduledPatterns and
   FrequencyPatterns hold *original* pattern indices (into the NetworkView),
   in ascending order; a mixed pattern (HasSchedules && HasFrequencies) can
   appear in both when at least one of its service codes is active today. */
type PatternFilter struct {
	ScheduledPatterns []int
	FrequencyPatterns []int

	scheduledPosition map[int]int
	frequencyPosition map[int]int
}

/* PrefilterPatterns builds a PatternFilter for the given search date and
   requested modes. An empty modes set means "all modes accepted". Grounded
   on the teacher's PrepareRaptorInput (mod.go), which likewise performs a
   single indexing pass over the whole input before any round runs -- here
   the index being built is "which patterns matter today" rather than
   "stop-times by stop/trip id". */
func PrefilterPatterns(network NetworkView, date string, modes map[Mode]bool) *PatternFilter {
	services := network.ActiveServicesForDate(date)

	filter := &PatternFilter{
		scheduledPosition: map[int]int{},
		frequencyPosition: map[int]int{},
	}

	pattern_count := network.PatternCount()
	for pattern_index := 0; pattern_index < pattern_count; pattern_index++ {
		pattern := network.Pattern(pattern_index)

		if len(modes) > 0 && !modes[pattern.Mode] {
			continue
		}

		has_active_service := false
		for i := range pattern.Schedules {
			if services.Contains(pattern.Schedules[i].ServiceCode) {
				has_active_service = true
				break
			}
		}
		if !has_active_service {
			continue
		}

		if pattern.HasSchedules {
			filter.scheduledPosition[pattern_index] = len(filter.ScheduledPatterns)
			filter.ScheduledPatterns = append(filter.ScheduledPatterns, pattern_index)
		}
		if pattern.HasFrequencies {
			filter.frequencyPosition[pattern_index] = len(filter.FrequencyPatterns)
			filter.FrequencyPatterns = append(filter.FrequencyPatterns, pattern_index)
		}
	}

	return filter
}

/* ScheduledIndex returns the position of an original pattern index within
   ScheduledPatterns, or -1 if it was filtered out / has no schedules. */
func (f *PatternFilter) ScheduledIndex(originalPattern int) int {
	if pos, ok := f.scheduledPosition[originalPattern]; ok {
		return pos
	}
	return -1
}

/* FrequencyIndex returns the position of an original pattern index within
   FrequencyPatterns, or -1. */
func (f *PatternFilter) FrequencyIndex(originalPattern int) int {
	if pos, ok := f.frequencyPosition[originalPattern]; ok {
		return pos
	}
	return -1
}

/* IsScheduledActive reports whether the given original pattern index
   survived the prefilter as a scheduled pattern. */
func (f *PatternFilter) IsScheduledActive(originalPattern int) bool {
	_, ok := f.scheduledPosition[originalPattern]
	return ok
}

/* IsFrequencyActive reports whether the given original pattern index
   survived the prefilter as a frequency pattern. */
func (f *PatternFilter) IsFrequencyActive(originalPattern int) bool {
	_, ok := f.frequencyPosition[originalPattern]
	return ok
}
