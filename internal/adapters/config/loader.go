// Package config provides the workspace configuration loader for prism.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// nodeScheme is the identifier scheme of portfolio nodes declared without an id.
const nodeScheme = "NODE"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DiscoverRoot walks up from cwd to the first directory containing prism.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir := cwd
	for {
		if _, err := os.Stat(filepath.Join(currentDir, domain.ConfigFileName)); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load finds prism.yaml from cwd and converts it into a catalog.
func (l *Loader) Load(cwd string) (*domain.Catalog, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	var file Prismfile
	if err := readAndUnmarshalYAML(filepath.Join(root, domain.ConfigFileName), &file); err != nil {
		return nil, err
	}

	catalog, err := l.buildCatalog(&file)
	if err != nil {
		return nil, zerr.With(err, "root", root)
	}
	catalog.Root = root
	return catalog, nil
}

func (l *Loader) buildCatalog(file *Prismfile) (*domain.Catalog, error) {
	catalog := &domain.Catalog{
		LiveData:   file.LiveData,
		Statistics: statisticsSettings(file.Statistics),
	}

	seen := make(map[string]struct{})
	for i := range file.Securities {
		sec, err := buildSecurity(&file.Securities[i])
		if err != nil {
			return nil, err
		}
		if err := unique(seen, "security", sec.ID.String()); err != nil {
			return nil, err
		}
		catalog.Securities = append(catalog.Securities, sec)
	}

	for i := range file.Portfolios {
		p, err := buildPortfolio(&file.Portfolios[i])
		if err != nil {
			return nil, err
		}
		if err := unique(seen, "portfolio", p.ID.String()); err != nil {
			return nil, err
		}
		catalog.Portfolios = append(catalog.Portfolios, p)
	}

	for i := range file.Functions {
		fn, err := buildFunction(&file.Functions[i])
		if err != nil {
			return nil, err
		}
		if err := unique(seen, "function", fn.ID); err != nil {
			return nil, err
		}
		catalog.Functions = append(catalog.Functions, fn)
	}

	for i := range file.Views {
		view, err := l.buildView(&file.Views[i])
		if err != nil {
			return nil, err
		}
		if err := unique(seen, "view", view.Name()); err != nil {
			return nil, err
		}
		catalog.Views = append(catalog.Views, view)
	}

	return catalog, nil
}

func unique(seen map[string]struct{}, kind, key string) error {
	k := kind + ":" + key
	if _, ok := seen[k]; ok {
		return zerr.With(zerr.With(domain.ErrConfigInvalid, "duplicate", kind), "id", key)
	}
	seen[k] = struct{}{}
	return nil
}

func buildSecurity(dto *SecurityDTO) (*domain.SimpleSecurity, error) {
	id, err := domain.ParseUniqueID(dto.ID)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	if dto.Type == "" {
		return nil, zerr.With(zerr.With(domain.ErrConfigInvalid, "security", dto.ID), "missing", "type")
	}
	ids, err := parseBundle(dto.Identifiers)
	if err != nil {
		return nil, zerr.With(err, "security", dto.ID)
	}
	return &domain.SimpleSecurity{
		ID:          id,
		DisplayName: dto.Name,
		Type:        dto.Type,
		Identifiers: ids,
	}, nil
}

func buildPortfolio(dto *PortfolioDTO) (*domain.SimplePortfolio, error) {
	id, err := domain.ParseUniqueID(dto.ID)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	root, err := buildNode(&dto.Root, domain.UniqueID{}, id.Value)
	if err != nil {
		return nil, zerr.With(err, "portfolio", dto.ID)
	}
	return &domain.SimplePortfolio{
		ID:          id,
		DisplayName: dto.Name,
		Root:        root,
		Attrs:       dto.Attributes,
	}, nil
}

// buildNode converts a node tree. Nodes without an id are named by their path.
func buildNode(dto *NodeDTO, parent domain.UniqueID, path string) (*domain.SimplePortfolioNode, error) {
	if dto.Name != "" {
		path += "/" + dto.Name
	}
	id := domain.NewUniqueID(nodeScheme, path, "")
	if dto.ID != "" {
		var err error
		if id, err = domain.ParseUniqueID(dto.ID); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}
	}

	node := &domain.SimplePortfolioNode{
		ID:          id,
		ParentID:    parent,
		DisplayName: dto.Name,
	}
	for i := range dto.Positions {
		pos, err := buildPosition(&dto.Positions[i])
		if err != nil {
			return nil, err
		}
		node.Holdings = append(node.Holdings, pos)
	}
	for i := range dto.Children {
		child, err := buildNode(&dto.Children[i], id, path)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

func buildPosition(dto *PositionDTO) (*domain.SimplePosition, error) {
	id, err := domain.ParseUniqueID(dto.ID)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	link, err := buildLink(&dto.SecurityLinkDTO)
	if err != nil {
		return nil, zerr.With(err, "position", dto.ID)
	}

	pos := &domain.SimplePosition{
		ID:    id,
		Qty:   dto.Quantity,
		Link:  link,
		Attrs: dto.Attributes,
	}
	for i := range dto.Trades {
		trade, err := buildTrade(&dto.Trades[i])
		if err != nil {
			return nil, zerr.With(err, "position", dto.ID)
		}
		pos.TradeSet = append(pos.TradeSet, trade)
	}
	return pos, nil
}

func buildTrade(dto *TradeDTO) (*domain.SimpleTrade, error) {
	id, err := domain.ParseUniqueID(dto.ID)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	link, err := buildLink(&dto.SecurityLinkDTO)
	if err != nil {
		return nil, zerr.With(err, "trade", dto.ID)
	}
	return &domain.SimpleTrade{
		ID:    id,
		Qty:   dto.Quantity,
		Link:  link,
		Party: dto.Counterparty,
		Date:  dto.Date,
		Attrs: dto.Attributes,
	}, nil
}

func buildLink(dto *SecurityLinkDTO) (domain.SecurityLink, error) {
	var link domain.SecurityLink
	if dto.Security != "" {
		id, err := domain.ParseUniqueID(dto.Security)
		if err != nil {
			return link, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}
		link.ObjectID = id.ObjectID()
	}
	ids, err := parseBundle(dto.SecurityIdentifiers)
	if err != nil {
		return link, err
	}
	link.ExternalIDs = ids

	if !link.HasObjectID() && !link.HasExternalIDs() {
		return link, zerr.With(domain.ErrConfigInvalid, "missing", "security")
	}
	return link, nil
}

func parseBundle(raw []string) (domain.ExternalIDBundle, error) {
	ids := make([]domain.ExternalID, 0, len(raw))
	for _, s := range raw {
		id, err := domain.ParseExternalID(strings.TrimSpace(s))
		if err != nil {
			return domain.ExternalIDBundle{}, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}
		ids = append(ids, id)
	}
	return domain.NewExternalIDBundle(ids...), nil
}

func buildFunction(dto *FunctionDTO) (domain.FunctionDefinition, error) {
	if dto.ID == "" || dto.Output == "" {
		return domain.FunctionDefinition{}, zerr.With(zerr.With(domain.ErrConfigInvalid, "function", dto.ID), "missing", "id or output")
	}
	if dto.ID == domain.LiveDataFunctionID {
		return domain.FunctionDefinition{}, zerr.With(zerr.With(domain.ErrConfigInvalid, "function", dto.ID), "reason", "reserved id")
	}
	targetType, err := domain.ParseComputationTargetType(dto.Target)
	if err != nil {
		return domain.FunctionDefinition{}, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "function", dto.ID)
	}

	fn := domain.FunctionDefinition{
		ID:           dto.ID,
		Output:       dto.Output,
		TargetType:   targetType,
		SecurityType: dto.SecurityType,
	}
	for _, in := range dto.Inputs {
		if in.OnSecurity && targetType != domain.TargetPosition && targetType != domain.TargetTrade {
			return domain.FunctionDefinition{}, zerr.With(zerr.With(domain.ErrConfigInvalid, "function", dto.ID), "reason", "onSecurity input on "+dto.Target+" target")
		}
		fn.Inputs = append(fn.Inputs, domain.FunctionInput{ValueName: in.Value, OnSecurity: in.OnSecurity})
	}
	return fn, nil
}

func (l *Loader) buildView(dto *ViewDTO) (*domain.ViewDefinition, error) {
	var portfolioID domain.UniqueID
	if dto.Portfolio != "" {
		var err error
		if portfolioID, err = domain.ParseUniqueID(dto.Portfolio); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "view", dto.Name)
		}
	}

	configs := make([]*domain.ViewCalculationConfiguration, 0, len(dto.CalcConfigs))
	for i := range dto.CalcConfigs {
		cc := &dto.CalcConfigs[i]
		reqs := make([]domain.ValueRequirement, 0, len(cc.SpecificRequirements))
		for j := range cc.SpecificRequirements {
			req, err := buildRequirement(&cc.SpecificRequirements[j])
			if err != nil {
				return nil, zerr.With(zerr.With(err, "view", dto.Name), "calc_config", cc.Name)
			}
			reqs = append(reqs, req)
		}
		if len(cc.PortfolioRequirements) == 0 && len(reqs) == 0 && l.Logger != nil {
			l.Logger.Warn("calculation configuration requests no outputs", "view", dto.Name, "calc_config", cc.Name)
		}
		configs = append(configs, domain.NewViewCalculationConfiguration(cc.Name, cc.PortfolioRequirements, reqs))
	}

	view, err := domain.NewViewDefinition(dto.Name, portfolioID, configs...)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	return view, nil
}

func buildRequirement(dto *RequirementDTO) (domain.ValueRequirement, error) {
	targetType, err := domain.ParseComputationTargetType(dto.Target)
	if err != nil {
		return domain.ValueRequirement{}, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
	}
	if dto.Value == "" {
		return domain.ValueRequirement{}, zerr.With(domain.ErrConfigInvalid, "missing", "value")
	}

	switch {
	case dto.ID != "" && len(dto.Identifiers) > 0:
		return domain.ValueRequirement{}, zerr.With(domain.ErrConfigInvalid, "reason", "requirement names both id and identifiers")
	case dto.ID != "":
		id, err := domain.ParseUniqueID(dto.ID)
		if err != nil {
			return domain.ValueRequirement{}, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}
		return domain.NewValueRequirement(dto.Value, domain.NewComputationTargetSpecification(targetType, id)), nil
	case len(dto.Identifiers) > 0:
		ids, err := parseBundle(dto.Identifiers)
		if err != nil {
			return domain.ValueRequirement{}, err
		}
		return domain.NewValueRequirement(dto.Value, domain.NewComputationTargetRequirement(targetType, ids)), nil
	default:
		return domain.ValueRequirement{}, zerr.With(zerr.With(domain.ErrConfigInvalid, "value", dto.Value), "missing", "id or identifiers")
	}
}

func statisticsSettings(dto *StatisticsDTO) domain.StatisticsSettings {
	s := domain.DefaultStatisticsSettings()
	if dto == nil {
		return s
	}
	if dto.Enabled != nil {
		s.Enabled = *dto.Enabled
	}
	if dto.DecayInterval != nil {
		s.DecayInterval = *dto.DecayInterval
	}
	if dto.DecayFactor != nil {
		s.DecayFactor = *dto.DecayFactor
	}
	if dto.Retention != nil {
		s.Retention = *dto.Retention
	}
	if dto.DefaultJobSize != nil {
		s.DefaultJobSize = *dto.DefaultJobSize
	}
	if dto.Parallelism != nil {
		s.Parallelism = *dto.Parallelism
	}
	return s
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
