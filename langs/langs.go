package langs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/rs/zerolog/log"
)

const DefaultLang = "en-US"

var _packs = map[string]*gabs.Container{}

type CommandPack struct {
	langPack LangPack
	commands []string
}

// SubCommand descends one level, so keys read command.subcommand.key.
func (cp *CommandPack) SubCommand(c string) *CommandPack {
	cp.commands = append(cp.commands, c)

	return cp
}

func (cp *CommandPack) Getf(k string, a ...any) *string {
	t := cp.Get(k)
	p := fmt.Sprintf(*t, a...)

	return &p
}

func (cp *CommandPack) Get(k string) *string {
	path := []string{}
	path = append(path, cp.commands...)
	path = append(path, k)

	t, ok := cp.langPack._container.S(path...).Data().(string)
	if !ok {
		return &cp.langPack.NotFoundText
	}

	return &t
}

type LangPack struct {
	_container   *gabs.Container
	NotFoundText string
}

func (p *LangPack) Command(c string) *CommandPack {
	return &CommandPack{langPack: *p, commands: []string{c}}
}

// Pack returns the lang pack for c, falling back to the default pack when c
// is unknown so a stray value in the database cannot take a reply down.
func Pack(c string) *LangPack {
	pack := _packs[c]
	if pack == nil {
		pack = _packs[DefaultLang]
	}
	if pack == nil {
		log.Panic().Msgf(`Cannot find "%v" nor the "%v" lang pack`, c, DefaultLang)
	}

	notFound, ok := pack.S("notFound").Data().(string)
	if !ok {
		log.Panic().Msgf(`Cannot find "notFound" text in lang pack "%v"`, c)
	}

	return &LangPack{_container: pack, NotFoundText: notFound}
}

func Load() error {
	return LoadDir("./langs/packs")
}

func LoadDir(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error loading lang packs: %w", err)
	}

	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return fmt.Errorf(`error loading lang pack "%v": %w`, file.Name(), err)
		}

		parsed, err := gabs.ParseJSON(data)
		if err != nil {
			return fmt.Errorf(`error parsing lang pack "%v" json: %w`, file.Name(), err)
		}

		_packs[strings.TrimSuffix(file.Name(), ".json")] = parsed
	}

	return nil
}
