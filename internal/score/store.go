package score

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log"
	"sort"
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

// DefaultScorer keeps play history in sqlite, keyed by chart checksum.
type DefaultScorer struct {
	Path string

	db *sql.DB
}

type InputsCompact struct {
	Lane  int
	Times []time.Duration
}

// compactInputs groups press times by lane, every lane up to the highest one
// pressed gets an entry.
func compactInputs(inputs []game.Input) []InputsCompact {
	colCount := 0
	for _, i := range inputs {
		if i.Lane >= colCount {
			colCount = i.Lane + 1
		}
	}
	ins := make([]InputsCompact, colCount)
	for c := range ins {
		ins[c] = InputsCompact{Lane: c, Times: []time.Duration{}}
	}
	for _, i := range inputs {
		if i.Lane < 0 {
			continue
		}
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.Time)
	}
	return ins
}

// uncompactInputs restores time order across lanes.
func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Lane: i.Lane, Time: t})
		}
	}
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].Time < ins[j].Time })
	return ins
}

func encodeInputs(inputs []game.Input) ([]byte, error) {
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		return nil, errors.Wrap(err, "marshal inputs")
	}
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); nil != err {
		return nil, errors.Wrap(err, "compress inputs")
	}
	if err := zw.Close(); nil != err {
		return nil, errors.Wrap(err, "compress inputs")
	}
	return buf.Bytes(), nil
}

func decodeInputs(blob []byte) ([]game.Input, error) {
	data, err := io.ReadAll(lz4.NewReader(bytes.NewReader(blob)))
	if nil != err {
		return nil, errors.Wrap(err, "decompress inputs")
	}
	var ins []InputsCompact
	if err := json.Unmarshal(data, &ins); nil != err {
		return nil, errors.Wrap(err, "unmarshal inputs")
	}
	return uncompactInputs(ins), nil
}

func (s *DefaultScorer) Init() error {
	path := s.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return errors.Wrap(err, "open score database")
	}

	initStatement := `
	create table if not exists scores
	  (
		  id text not null primary key,
		  sum text not null,
		  od real,
		  played_at integer,
		  marvelous integer,
		  perfect integer,
		  great integer,
		  good integer,
		  ok integer,
		  miss integer,
		  accuracy real,
		  inputs blob
	  );
	create index if not exists scores_sum on scores(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return errors.Wrap(err, "create score table")
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		if err := s.db.Close(); nil != err {
			log.Println("unable to close score database", err)
		}
		s.db = nil
	}
}

func (s *DefaultScorer) Save(c *game.Chart, play *Play) error {
	data, err := encodeInputs(play.Inputs)
	if nil != err {
		return err
	}
	t := play.Tally
	_, err = s.db.Exec(
		"insert into scores(id, sum, od, played_at, marvelous, perfect, great, good, ok, miss, accuracy, inputs) values(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		uuid.New().String(), c.Checksum, play.OD, play.PlayedAt.UnixNano(),
		t.Count(game.Marvelous), t.Count(game.Perfect), t.Count(game.Great),
		t.Count(game.Good), t.Count(game.Ok), t.Count(game.Miss),
		t.Accuracy(), data,
	)
	return errors.Wrap(err, "save score")
}

func (s *DefaultScorer) Load(c *game.Chart) ([]History, error) {
	histories := []History{}
	rows, err := s.db.Query("select id, sum, od, played_at, accuracy, inputs from scores where sum = ? order by played_at desc", c.Checksum)
	if nil != err {
		return histories, errors.Wrap(err, "load scores")
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var playedAt int64
		var blob []byte
		if err := rows.Scan(&h.ID, &h.Sum, &h.OD, &playedAt, &h.Accuracy, &blob); nil != err {
			return histories, errors.Wrap(err, "scan score")
		}
		h.PlayedAt = time.Unix(0, playedAt)
		h.Inputs, err = decodeInputs(blob)
		if nil != err {
			log.Println("unable to decode input history", h.ID, err)
			continue
		}
		histories = append(histories, h)
	}
	return histories, errors.Wrap(rows.Err(), "load scores")
}
