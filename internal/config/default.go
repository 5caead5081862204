package config

// DefaultStoryYAML is the built-in story used when no story file is given.
// The init command writes it verbatim so a scaffolded project starts from
// the same document the engine falls back to.
const DefaultStoryYAML = `title: The Drowned Almanac
theme: memory and the cost of keeping it
setting: the half-sunken city of Veles
mood: elegiac
chapters_per_act: 3

characters:
  - name: Mira Solace
    role: tide-reader
    desire: her sister's drowned journal
    fear: that remembering will unmake her
    secret: she can no longer recall her sister's voice
    arc:
      - title: Listening
        summary: Mira charts the tides for strangers and avoids the flooded quarter where her sister vanished.
      - title: Descent
        summary: She follows the journal's trail below the waterline, trading pieces of her own past for passage.
      - title: Keeping
        summary: Mira chooses which memories the city may keep and which she will carry alone.

  - name: Ezra Thorn
    role: archivist of the drowned
    desire: a finished almanac before the last archive floods
    fear: that the almanac is already wrong
    secret: he has been redacting entries that mention his own family
    arc:
      - title: Cataloguing
        summary: Ezra shelves salvaged pages and treats the rising water as a clerical problem.
      - title: Admission
        summary: He uncovers a redaction in his own hand and must decide whether to restore it.
      - title: Restoration
        summary: Ezra rewrites the almanac to include what he erased, whatever it costs the record.

  - name: Calla Wren
    role: ferrywoman
    desire: a berth on the last boat out of Veles
    fear: that she belongs to the city more than she knows
    secret: she has been smuggling memories out of the city in sealed bottles
    arc:
      - title: Crossing
        summary: Calla poles her ferry between rooftops and takes payment in forgotten names.
      - title: Mooring
        summary: A passenger's bottle breaks open and floods her with a life that is not hers.
      - title: Staying
        summary: Calla ties her ferry to the bell tower and chooses the city as her own.
`

func Default() (*Story, error) {
	return Parse([]byte(DefaultStoryYAML))
}
